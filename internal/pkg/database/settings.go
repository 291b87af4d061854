package database

import (
	"net"
	"net/url"
)

type PostgresSettings struct {
	User       string
	Password   string
	Host       string
	Port       string
	DBName     string
	SSlEnabled bool
}

// GetUrl renders the settings as a postgres:// URL. Credentials are escaped,
// so passwords may contain any character.
func (s PostgresSettings) GetUrl() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   net.JoinHostPort(s.Host, s.Port),
		Path:   "/" + s.DBName,
	}

	if !s.SSlEnabled {
		u.RawQuery = "sslmode=disable"
	}

	return u.String()
}
