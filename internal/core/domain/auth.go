package domain

// GoogleIdentity is the verified subset of a Google ID token used to match a local user.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}
