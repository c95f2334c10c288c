package auth

import "time"

// Claims carry the identity encoded inside an auth token.
type Claims struct {
	Subject int64
	Role    string
}

type Strategy interface {
	IssueToken(subject int64, role string) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
