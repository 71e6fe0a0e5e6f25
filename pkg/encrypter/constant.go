package encrypter

const (
	// AESKeyLen128 is the key length for AES-128.
	AESKeyLen128 = 16
	// AESKeyLen192 is the key length for AES-192.
	AESKeyLen192 = 24
	// AESKeyLen256 is the key length for AES-256.
	AESKeyLen256 = 32
)
