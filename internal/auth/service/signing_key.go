package service

import (
	"context"
	"encoding/base64"

	"gocloud.dev/secrets"

	apperrors "github.com/allisson/notes/internal/errors"

	// Register KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// LoadSigningKey resolves the JWT signing key from configuration.
//
// When ciphertext and keyURI are set, the key is the KMS-decrypted ciphertext
// (base64-encoded, decrypted through a gocloud.dev/secrets keeper:
// awskms://, gcpkms://, azurekeyvault://, hashivault://, base64key://).
// Otherwise plainSecret is used directly. The key is loaded once at startup
// and never rotated at runtime.
func LoadSigningKey(ctx context.Context, plainSecret, ciphertext, keyURI string) ([]byte, error) {
	if ciphertext != "" && keyURI != "" {
		raw, err := base64.StdEncoding.DecodeString(ciphertext)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to decode JWT secret ciphertext")
		}

		keeper, err := secrets.OpenKeeper(ctx, keyURI)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to open KMS keeper")
		}
		defer keeper.Close()

		key, err := keeper.Decrypt(ctx, raw)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to decrypt JWT secret")
		}
		return key, nil
	}

	if plainSecret == "" {
		return nil, apperrors.New("JWT_SECRET is required")
	}

	return []byte(plainSecret), nil
}
