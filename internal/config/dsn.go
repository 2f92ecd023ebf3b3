package config

import (
	"fmt"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
)

// DSNValue resolves the effective DSN: an explicit dsn/url wins, otherwise
// one is assembled from the host/user/password parts for the active driver.
func (c DatabaseRuntimeConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.URL); v != "" {
		return v
	}

	switch c.Driver {
	case DriverPostgres:
		return c.postgresDSN()
	default:
		return c.mysqlDSN()
	}
}

func (c DatabaseRuntimeConfig) mysqlDSN() string {
	mc := mysqldriver.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	mc.DBName = c.Name
	mc.ParseTime = true

	params := map[string]string{
		"charset": c.Charset,
		"loc":     c.Loc,
	}
	for k, v := range c.Params {
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if key != "" && val != "" {
			params[key] = val
		}
	}
	mc.Params = params
	return mc.FormatDSN()
}

func (c DatabaseRuntimeConfig) postgresDSN() string {
	parts := []string{
		fmt.Sprintf("host=%s", c.Host),
		fmt.Sprintf("port=%d", c.Port),
		fmt.Sprintf("user=%s", c.User),
	}
	if c.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", c.Password))
	}
	parts = append(parts,
		fmt.Sprintf("dbname=%s", c.Name),
		fmt.Sprintf("sslmode=%s", c.SSLMode),
	)
	for k, v := range c.Params {
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if key != "" && val != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", key, val))
		}
	}
	return strings.Join(parts, " ")
}
