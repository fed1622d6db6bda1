package domain

// Zero wipes every buffer passed in. Derived keys, password hash candidates and unsealed
// passphrase bytes go through it as soon as their last use returns.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
}
