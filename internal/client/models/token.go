package models

// TokenPair is what the token endpoint returns: a short-lived access token
// and a longer-lived refresh token, both opaque bearer strings.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
