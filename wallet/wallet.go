package wallet

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Luismorlan/star_notary/service"
	"github.com/Luismorlan/star_notary/utils"
	"github.com/jroimartin/gocui"
	"google.golang.org/grpc"
)

// User proves address ownership and registers stars on the notary chain.
type Wallet struct {
	keys *rsa.PrivateKey
	// Established connection to the notary node, nil until connect.
	client service.StarNotaryServiceClient
	// Terminal UI handle, nil in debug mode.
	g *gocui.Gui
}

// Create a wallet backed by the key stored at keyPath, generating a fresh
// one when the file does not exist yet.
func NewWallet(keyPath string, g *gocui.Gui) *Wallet {
	keys, err := utils.LoadOrCreateKey(keyPath)
	if err != nil {
		log.Fatal("cannot load wallet key: ", err)
	}
	return &Wallet{keys: keys, g: g}
}

// GetAddress derives the wallet address from the public key.
func (w *Wallet) GetAddress() string {
	return utils.PublicKeyToAddress(&w.keys.PublicKey)
}

func (w *Wallet) SetNotaryConnection(ipAddr string, port string) error {
	var opts []grpc.DialOption
	opts = append(opts, grpc.WithInsecure())
	serverAddr := ipAddr + ":" + port
	conn, err := grpc.Dial(serverAddr, opts...)
	if err != nil {
		return err
	}
	w.client = service.NewStarNotaryServiceClient(conn)
	return nil
}

// ClaimStar performs the full ownership protocol: ask the notary for a
// challenge, sign it locally and submit the star together with the
// signature. The notary enforces the time window, so the three steps must
// happen back to back.
func (w *Wallet) ClaimStar(ra string, dec string, story string) (*service.Block, error) {
	if w.client == nil {
		return nil, errors.New("not connected to a notary node")
	}
	address := w.GetAddress()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	challenge, err := w.client.RequestChallenge(ctx, &service.RequestChallengeRequest{Address: address})
	if err != nil {
		return nil, err
	}

	signature, err := utils.SignMessage(challenge.GetMessage(), w.keys)
	if err != nil {
		return nil, err
	}

	res, err := w.client.SubmitStar(ctx, &service.SubmitStarRequest{
		Address:   address,
		Message:   challenge.GetMessage(),
		Signature: signature,
		Star:      &service.Star{Ra: ra, Dec: dec, Story: story},
	})
	if err != nil {
		return nil, err
	}
	return res.GetBlock(), nil
}

// GetStars lists every star claimed by address, own address when empty.
func (w *Wallet) GetStars(address string) ([]*service.OwnedStar, error) {
	if w.client == nil {
		return nil, errors.New("not connected to a notary node")
	}
	if address == "" {
		address = w.GetAddress()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	res, err := w.client.GetStarsByOwner(ctx, &service.GetStarsByOwnerRequest{Address: address})
	if err != nil {
		return nil, err
	}
	return res.GetStars(), nil
}

// GetBlockByHeight fetches one block, the second return reports absence.
func (w *Wallet) GetBlockByHeight(height int64) (*service.Block, bool, error) {
	if w.client == nil {
		return nil, false, errors.New("not connected to a notary node")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	res, err := w.client.GetBlockByHeight(ctx, &service.GetBlockByHeightRequest{Height: height})
	if err != nil {
		return nil, false, err
	}
	return res.GetBlock(), res.GetFound(), nil
}

// Audit asks the notary for a full chain validation report.
func (w *Wallet) Audit() ([]*service.ValidationFinding, error) {
	if w.client == nil {
		return nil, errors.New("not connected to a notary node")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	res, err := w.client.ValidateChain(ctx, &service.ValidateChainRequest{})
	if err != nil {
		return nil, err
	}
	return res.GetFindings(), nil
}

// Log writes to the terminal UI logger view, falling back to stdout logging
// in debug mode.
func (w *Wallet) Log(s string) {
	if w.g == nil {
		log.Println(s)
		return
	}
	w.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("logger")
		if err != nil {
			return err
		}
		fmt.Fprintln(v, s)
		return nil
	})
}
