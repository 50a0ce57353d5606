package config

type Config struct {
	DatabaseConnString string
	JWTSecret          string
	SessionSecret      string
	Environment        string
}
