package utils

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
)

// GenerateKeyPair generates a new key pair
func GenerateKeyPair(bits int) (*rsa.PrivateKey, *rsa.PublicKey) {
	privkey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil
	}
	return privkey, &privkey.PublicKey
}

// PrivateKeyToBytes private key to bytes
func PrivateKeyToBytes(priv *rsa.PrivateKey) []byte {
	privBytes := pem.EncodeToMemory(
		&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(priv),
		},
	)

	return privBytes
}

// PublicKeyToBytes public key to bytes
func PublicKeyToBytes(pub *rsa.PublicKey) []byte {
	pubASN1, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil
	}

	return pubASN1
}

// BytesToPrivateKey bytes to private key
func BytesToPrivateKey(priv []byte) *rsa.PrivateKey {
	block, _ := pem.Decode(priv)
	if block == nil {
		return nil
	}
	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil
	}
	return key
}

// BytesToPublicKey bytes to public key
func BytesToPublicKey(pub []byte) *rsa.PublicKey {
	ifc, err := x509.ParsePKIXPublicKey(pub)
	if err != nil {
		return nil
	}
	key, ok := ifc.(*rsa.PublicKey)
	if !ok {
		return nil
	}
	return key
}

// Hash message using SHA256
func SHA256(msg []byte) []byte {
	newhash := crypto.SHA256
	pssh := newhash.New()
	pssh.Write(msg)
	return pssh.Sum(nil)
}

// Sign a message's SHA256 digest with provided private key.
func Sign(msg []byte, sk *rsa.PrivateKey) ([]byte, error) {
	// Calculate SHA256 digest of the original message.
	newhash := crypto.SHA256
	pssh := newhash.New()
	pssh.Write(msg)
	digest := pssh.Sum(nil)

	// Sign the message.
	var opts rsa.PSSOptions
	opts.SaltLength = rsa.PSSSaltLengthAuto
	signature, err := rsa.SignPSS(rand.Reader, sk, newhash, digest, &opts)
	if err != nil {
		return nil, err
	}

	return signature, nil
}

// Verify the given signature matches the message.
func Verify(msg []byte, pk *rsa.PublicKey, signature []byte) bool {
	// Calculate SHA256 digest of the original message.
	newhash := crypto.SHA256
	pssh := newhash.New()
	pssh.Write(msg)
	digest := pssh.Sum(nil)

	var opts rsa.PSSOptions
	opts.SaltLength = rsa.PSSSaltLengthAuto

	err := rsa.VerifyPSS(pk, newhash, digest, signature, &opts)
	return err == nil
}

// PublicKeyToAddress derives the wallet address for a public key: the hex
// form of its PKIX marshaling. The address is what block owners are recorded
// under and what challenge messages embed.
func PublicKeyToAddress(pub *rsa.PublicKey) string {
	return BytesToHex(PublicKeyToBytes(pub))
}

// AddressToPublicKey recovers the public key behind a wallet address.
func AddressToPublicKey(address string) (*rsa.PublicKey, error) {
	raw, err := HexToBytes(address)
	if err != nil {
		return nil, err
	}
	pk := BytesToPublicKey(raw)
	if pk == nil {
		return nil, errors.New("address does not decode to a public key")
	}
	return pk, nil
}

// SignMessage signs a challenge message and returns the signature in hex.
func SignMessage(message string, sk *rsa.PrivateKey) (string, error) {
	sig, err := Sign([]byte(message), sk)
	if err != nil {
		return "", err
	}
	return BytesToHex(sig), nil
}

// VerifyAddressSignature reports whether the hex signature over message was
// produced by the key behind address. Any malformed input verifies false,
// never errors, since the caller only cares about yes or no.
func VerifyAddressSignature(message string, address string, signature string) bool {
	pk, err := AddressToPublicKey(address)
	if err != nil {
		return false
	}
	sig, err := HexToBytes(signature)
	if err != nil {
		return false
	}
	return Verify([]byte(message), pk, sig)
}
