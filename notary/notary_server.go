package notary

import (
	"context"
	"errors"
	"log"

	"github.com/Luismorlan/star_notary/config"
	"github.com/Luismorlan/star_notary/model"
	"github.com/Luismorlan/star_notary/service"
	"github.com/Luismorlan/star_notary/visualize"
)

// NotaryServer exposes the notary over gRPC. It owns no chain state itself,
// every request is delegated to the embedded notary.
type NotaryServer struct {
	service.UnimplementedStarNotaryServiceServer

	notary *Notary
}

// Create a new notary server backed by a freshly bootstrapped chain.
func NewNotaryServer(c config.AppConfig) (*NotaryServer, error) {
	n, err := NewNotary(c)
	if err != nil {
		return nil, err
	}
	return &NotaryServer{notary: n}, nil
}

func (sev *NotaryServer) RequestChallenge(ctx context.Context, req *service.RequestChallengeRequest) (*service.RequestChallengeResponse, error) {
	if req.GetAddress() == "" {
		return nil, errors.New("address is required")
	}
	message := sev.notary.RequestChallenge(req.GetAddress())
	return &service.RequestChallengeResponse{Message: message}, nil
}

func (sev *NotaryServer) SubmitStar(ctx context.Context, req *service.SubmitStarRequest) (*service.SubmitStarResponse, error) {
	if req.GetStar() == nil {
		return nil, errors.New("star is required")
	}
	block, err := sev.notary.SubmitStar(req.GetAddress(), req.GetMessage(), req.GetSignature(), ProtoToStar(req.GetStar()))
	if err != nil {
		log.Println("star submission rejected:", err)
		return nil, err
	}
	log.Println("recorded star claim at height", block.Height, "for", shortAddr(block.Owner))
	return &service.SubmitStarResponse{Block: BlockToProto(block)}, nil
}

// Both lookups report absence through Found=false rather than an RPC error,
// matching the notary's sentinel-based not-found policy.
func (sev *NotaryServer) GetBlockByHeight(ctx context.Context, req *service.GetBlockByHeightRequest) (*service.GetBlockByHeightResponse, error) {
	block, err := sev.notary.GetBlockByHeight(req.GetHeight())
	if errors.Is(err, model.ErrNotFound) {
		return &service.GetBlockByHeightResponse{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &service.GetBlockByHeightResponse{Block: BlockToProto(block), Found: true}, nil
}

func (sev *NotaryServer) GetBlockByHash(ctx context.Context, req *service.GetBlockByHashRequest) (*service.GetBlockByHashResponse, error) {
	block, err := sev.notary.GetBlockByHash(req.GetHash())
	if errors.Is(err, model.ErrNotFound) {
		return &service.GetBlockByHashResponse{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &service.GetBlockByHashResponse{Block: BlockToProto(block), Found: true}, nil
}

func (sev *NotaryServer) GetStarsByOwner(ctx context.Context, req *service.GetStarsByOwnerRequest) (*service.GetStarsByOwnerResponse, error) {
	stars, err := sev.notary.GetStarsByOwner(req.GetAddress())
	if err != nil {
		return nil, err
	}
	res := service.GetStarsByOwnerResponse{}
	for _, owned := range stars {
		res.Stars = append(res.Stars, &service.OwnedStar{
			Owner: owned.Owner,
			Star:  StarToProto(owned.Star),
		})
	}
	return &res, nil
}

func (sev *NotaryServer) ValidateChain(ctx context.Context, req *service.ValidateChainRequest) (*service.ValidateChainResponse, error) {
	res := service.ValidateChainResponse{}
	for _, finding := range sev.notary.Validate() {
		res.Findings = append(res.Findings, &service.ValidationFinding{
			Height: finding.Height,
			Kind:   finding.Kind.String(),
		})
	}
	return &res, nil
}

func (sev *NotaryServer) GetChain(ctx context.Context, req *service.GetChainRequest) (*service.GetChainResponse, error) {
	res := service.GetChainResponse{}
	for _, block := range sev.notary.ChainSnapshot() {
		res.Blocks = append(res.Blocks, BlockToProto(block))
	}
	return &res, nil
}

// Height of the notary's tail block.
func (sev *NotaryServer) Height() int64 {
	return sev.notary.Height()
}

// Audit runs a full chain validation and logs the report.
func (sev *NotaryServer) Audit() []model.ValidationError {
	findings := sev.notary.Validate()
	if len(findings) == 0 {
		log.Println("chain is intact, height:", sev.notary.Height())
		return findings
	}
	for _, f := range findings {
		log.Println("chain damage:", f.Error())
	}
	return findings
}

// Show renders the newest d blocks of the chain to a graph image.
func (sev *NotaryServer) Show(d int) {
	visualize.Render(sev.notary.ChainSnapshot(), d, sev.notary.UUID())
}

// BlockToProto converts a model block into its wire representation.
func BlockToProto(block *model.Block) *service.Block {
	return &service.Block{
		Height:    block.Height,
		Timestamp: block.Timestamp,
		PrevHash:  block.PrevHash,
		Body:      block.Body,
		Owner:     block.Owner,
		Hash:      block.Hash,
	}
}

// StarToProto converts a model star into its wire representation.
func StarToProto(star model.Star) *service.Star {
	return &service.Star{
		Ra:    star.Ra,
		Dec:   star.Dec,
		Story: star.Story,
	}
}

// ProtoToStar converts a wire star into the model type.
func ProtoToStar(star *service.Star) model.Star {
	return model.Star{
		Ra:    star.GetRa(),
		Dec:   star.GetDec(),
		Story: star.GetStory(),
	}
}

// shortAddr trims a hex address down to a loggable prefix.
func shortAddr(address string) string {
	if len(address) <= 16 {
		return address
	}
	return address[:16] + "..."
}
