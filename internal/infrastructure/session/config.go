package session

type Config struct {
	URI          string
	CookieName   string `yaml:"cookie_name"`
	TTLInMinutes int64  `yaml:"ttl_in_minutes"`
}
