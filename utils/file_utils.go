package utils

import (
	"crypto/rsa"
	"errors"
	"io/ioutil"
	"log"
	"os"
)

// LoadOrCreateKey reads the RSA private key stored at fPath, generating and
// saving a fresh 2048 bit key when the file does not exist yet.
func LoadOrCreateKey(fPath string) (*rsa.PrivateKey, error) {
	if fPath == "" {
		return nil, errors.New("key file path is missing")
	}
	if _, err := os.Stat(fPath); os.IsNotExist(err) {
		log.Println("no key found, generating a new one at", fPath)
		sk, _ := GenerateKeyPair(2048)
		if sk == nil {
			return nil, errors.New("failed to generate key pair")
		}
		if err := SavePrivateKeyToFile(sk, fPath); err != nil {
			return nil, err
		}
		return sk, nil
	}
	return ReadKeyFromFPath(fPath)
}

func SavePrivateKeyToFile(privkey *rsa.PrivateKey, fpath string) error {
	f, err := os.Create(fpath)
	if err != nil {
		log.Println("failed to open file", fpath, err)
		return err
	}
	defer f.Close()
	if _, err := f.Write(PrivateKeyToBytes(privkey)); err != nil {
		log.Println("failed to save key in", fpath, err)
		return err
	}
	log.Println("saved private key in file", fpath)
	return nil
}

func ReadKeyFromFPath(fPath string) (*rsa.PrivateKey, error) {
	fileContent, err := ioutil.ReadFile(fPath)
	if err != nil {
		return nil, err
	}
	key := BytesToPrivateKey(fileContent)
	if key == nil {
		return nil, errors.New("file does not contain a valid RSA private key")
	}
	return key, nil
}
