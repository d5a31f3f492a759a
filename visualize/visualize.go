package visualize

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os/exec"

	"github.com/Luismorlan/star_notary/model"
	"github.com/bradleyjkemp/memviz"
)

// We re-define the render model here because the full block carries long hex
// fields that make the graph unreadable. Blocks are linked through a parent
// pointer so memviz draws the chain as one connected component.
type block struct {
	height   int64
	hash     string
	prevHash string
	owner    string
	parent   *block
}

// Build the render chain for the newest d blocks, oldest first.
func constructData(blocks []*model.Block, d int) *block {
	if len(blocks) == 0 {
		return nil
	}
	start := len(blocks) - d
	if d <= 0 || start < 0 {
		start = 0
	}

	var parent *block
	var node *block
	for i := start; i < len(blocks); i++ {
		b := blocks[i]
		node = &block{
			height:   b.Height,
			hash:     shortenString(b.Hash),
			prevHash: shortenString(b.PrevHash),
			owner:    shortenString(b.Owner),
			parent:   parent,
		}
		parent = node
	}
	return node
}

// The string of an address or hash is just too long to render, instead we
// take only first 3 and last 3 characters and replace the middle part with
// '...'. E.g. "abcdefghi" will be rendered as "abc...ghi"
func shortenString(s string) string {
	if len(s) < 9 {
		return s
	}
	return fmt.Sprintf("%s...%s", s[0:3], s[len(s)-3:])
}

// Entry to this package, where:
// blocks: snapshot of the chain in ascending height order.
// d: how many of the newest blocks to render, 0 renders everything.
// id: unique id of the notary.
func Render(blocks []*model.Block, d int, id string) {
	buf := &bytes.Buffer{}

	chain := constructData(blocks, d)
	if chain == nil {
		return
	}

	memviz.Map(buf, &chain)

	// Write the parsed data to disk
	fileName := "/tmp/starchain-" + id
	outputName := "/tmp/rendered-starchain-" + id + ".png"
	err := ioutil.WriteFile(fileName, buf.Bytes(), 0644)
	if err != nil {
		panic(err)
	}

	cmd := exec.Command("dot", "-Tpng", fileName, "-o", outputName)
	cmd.Run()

	opCmd := exec.Command("open", outputName)
	opCmd.Run()
}
