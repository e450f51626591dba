package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/vchandela/ddia-btree/btree"
	"github.com/vchandela/ddia-btree/keyset"
)

var (
	promptColor = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed)
)

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *btree.BTree[int64]
	visualizer *btree.Visualizer[int64]
}

func NewCli(s *bufio.Scanner, out io.Writer, t *btree.BTree[int64]) *Cli {
	v := &btree.Visualizer[int64]{
		Tree: t,
	}
	return &Cli{scanner: s, out: out, tree: t, visualizer: v}
}

// Start runs the read-eval-print loop until EXIT or the end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintf(c.out, `
B-Tree CLI (minimum degree %d)

Available Commands:
  SET <key>       Insert an integer key into the B-Tree
  DEL <key>       Remove a key from the B-Tree
  GET <key>       Look up a key and show the node holding it
  SHOW            Print the B-Tree structure
  CHECK           Verify the B-Tree invariants
  DUMP <file>     Write all keys to a compressed file
  LOAD <file>     Replace the B-Tree contents with the keys stored in a file
  HELP            Show this message
  EXIT            Terminate this session
`, c.tree.Degree())
}

func (c *Cli) printPrompt() {
	promptColor.Fprint(c.out, "> ")
}

func (c *Cli) printError(err error) {
	errorColor.Fprintln(c.out, err)
}

func (c *Cli) printTree() {
	fmt.Fprint(c.out, c.visualizer.Visualize())
}

// processInput handles one line. It returns false when the session should end.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		c.printError(fmt.Errorf("unknown command %q", command))
	case "set":
		c.processSetCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "show":
		c.printTree()
	case "check":
		c.processCheckCommand()
	case "dump":
		c.processDumpCommand(fields[1:])
	case "load":
		c.processLoadCommand(fields[1:])
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

// parseKey expects exactly one integer argument.
func (c *Cli) parseKey(args []string, usage string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage:", usage)
		return 0, false
	}
	key, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		c.printError(fmt.Errorf("invalid key %q: keys are 64-bit integers", args[0]))
		return 0, false
	}
	return key, true
}

func (c *Cli) processSetCommand(args []string) {
	key, ok := c.parseKey(args, "SET <key>")
	if !ok {
		return
	}
	if !c.tree.Insert(key) {
		fmt.Fprintln(c.out, "Key already exists.")
		return
	}
	c.printTree()
}

func (c *Cli) processDeleteCommand(args []string) {
	key, ok := c.parseKey(args, "DEL <key>")
	if !ok {
		return
	}
	if !c.tree.Delete(key) {
		c.printError(fmt.Errorf("%w: %d", btree.ErrKeyNotFound, key))
		return
	}
	c.printTree()
}

func (c *Cli) processGetCommand(args []string) {
	key, ok := c.parseKey(args, "GET <key>")
	if !ok {
		return
	}
	node, idx, found := c.tree.Search(key)
	if !found {
		c.printError(fmt.Errorf("%w: %d", btree.ErrKeyNotFound, key))
		return
	}
	kind := "internal"
	if node.IsLeaf() {
		kind = "leaf"
	}
	fmt.Fprintf(c.out, "Found %d at index %d of %s node %v\n", key, idx, kind, node.Keys())
}

func (c *Cli) processCheckCommand() {
	if err := c.tree.Check(); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "OK: %d keys, height %d\n", c.tree.Len(), c.tree.Height())
}

func (c *Cli) processDumpCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DUMP <file>")
		return
	}
	data, err := keyset.Encode(c.tree.Keys())
	if err != nil {
		c.printError(err)
		return
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Dumped %d keys to %s (%d bytes)\n", c.tree.Len(), args[0], len(data))
}

func (c *Cli) processLoadCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: LOAD <file>")
		return
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		c.printError(err)
		return
	}
	keys, err := keyset.Decode(data)
	if err != nil {
		c.printError(fmt.Errorf("load %s: %w", args[0], err))
		return
	}

	c.tree.Reset()
	for _, key := range keys {
		c.tree.Insert(key)
	}
	fmt.Fprintf(c.out, "Loaded %d keys from %s\n", len(keys), args[0])
}
