package validino

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Hasher performs one-way hashing of a validated value.
type Hasher interface {
	// Hash returns the encoded hash of plaintext. Password hashers embed
	// their salt and parameters; digests are hex.
	Hash(plaintext []byte) (string, error)
}

// HasherFunc adapts a function to Hasher.
type HasherFunc func(plaintext []byte) (string, error)

// Hash calls f.
func (f HasherFunc) Hash(plaintext []byte) (string, error) {
	return f(plaintext)
}

// Hash replaces a string or byte value with its hash under h.
// Other values fail under kind is_string; a hasher error aborts.
func Hash(h Hasher, msg Msg) Validator {
	return Func(func(value any, _ Context) (any, error) {
		var plaintext []byte
		switch v := value.(type) {
		case string:
			plaintext = []byte(v)
		case []byte:
			plaintext = v
		default:
			return nil, fail(msg, "is_string", "not string")
		}
		out, err := h.Hash(plaintext)
		if err != nil {
			return nil, newTransformError(ErrHash, "hash", "", err)
		}
		return out, nil
	})
}

// HashWith is Hash using a built-in algorithm.
func HashWith(algo HashAlgo, msg Msg) (Validator, error) {
	h, ok := HasherFor(algo)
	if !ok {
		return nil, newConfigError(ErrHash, "", string(algo))
	}
	return Hash(h, msg), nil
}

// Argon2Params configures Argon2id hashing.
type Argon2Params struct {
	Time    uint32 // iterations
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultArgon2Params returns the OWASP-recommended Argon2id parameters.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}
}

// Argon2 hashes passwords with Argon2id and DefaultArgon2Params.
func Argon2() Hasher {
	return Argon2WithParams(DefaultArgon2Params())
}

// Argon2WithParams hashes passwords with Argon2id in the PHC string format
// $argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<key>.
func Argon2WithParams(p Argon2Params) Hasher {
	return HasherFunc(func(plaintext []byte) (string, error) {
		salt := make([]byte, p.SaltLen)
		if _, err := rand.Read(salt); err != nil {
			return "", fmt.Errorf("argon2 salt: %w", err)
		}
		key := argon2.IDKey(plaintext, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
		return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
			argon2.Version, p.Memory, p.Time, p.Threads,
			base64.RawStdEncoding.EncodeToString(salt),
			base64.RawStdEncoding.EncodeToString(key),
		), nil
	})
}

// BcryptCost is a bcrypt cost factor.
type BcryptCost int

const (
	BcryptMinCost     = BcryptCost(bcrypt.MinCost)
	BcryptDefaultCost = BcryptCost(bcrypt.DefaultCost)
	BcryptMaxCost     = BcryptCost(bcrypt.MaxCost)
)

// Bcrypt hashes passwords with bcrypt at the default cost.
func Bcrypt() Hasher {
	return BcryptWithCost(BcryptDefaultCost)
}

// BcryptWithCost hashes passwords with bcrypt at cost. Passwords longer
// than 72 bytes fail.
func BcryptWithCost(cost BcryptCost) Hasher {
	return HasherFunc(func(plaintext []byte) (string, error) {
		out, err := bcrypt.GenerateFromPassword(plaintext, int(cost))
		if err != nil {
			return "", fmt.Errorf("bcrypt: %w", err)
		}
		return string(out), nil
	})
}

// SHA256Hasher returns hex SHA-256 digests. Not for passwords.
func SHA256Hasher() Hasher {
	return digest(sha256.New)
}

// SHA512Hasher returns hex SHA-512 digests. Not for passwords.
func SHA512Hasher() Hasher {
	return digest(sha512.New)
}

func digest(newHash func() hash.Hash) Hasher {
	return HasherFunc(func(plaintext []byte) (string, error) {
		h := newHash()
		h.Write(plaintext)
		return hex.EncodeToString(h.Sum(nil)), nil
	})
}
