package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/sourcegraph/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/lexcodex/lenscope/lens"
)

// ProcessConfig defines how to spawn a language server process.
type ProcessConfig struct {
	Command    string
	Args       []string
	RootDir    string
	LanguageID string
}

// Client speaks LSP to a spawned server over stdio. It implements
// lens.ImplementationService and supplies the symbol trees lenses anchor
// to. The connection is shared: concurrent queries from independent lenses
// are expected and each carries its own context.
type Client struct {
	cfg    ProcessConfig
	cmd    *exec.Cmd
	conn   *jsonrpc2.Conn
	cancel context.CancelFunc

	mu          sync.Mutex
	openedFiles map[protocol.DocumentURI]bool
}

// NewClient launches the configured language server and performs the LSP
// handshake.
func NewClient(cfg ProcessConfig) (*Client, error) {
	if cfg.Command == "" {
		return nil, errors.New("command is required for LSP client")
	}
	if cfg.LanguageID == "" {
		return nil, errors.New("language id is required for LSP client")
	}
	root := cfg.RootDir
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, cfg.Command, cfg.Args...)
	cmd.Dir = absRoot

	stdin, err := cmd.StdinPipe()
	if err != nil {
		cancel()
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		cancel()
		return nil, err
	}

	rwc := &stdioReadWriteCloser{reader: stdout, writer: stdin}
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})

	client := &Client{
		cfg:         cfg,
		cmd:         cmd,
		cancel:      cancel,
		openedFiles: make(map[protocol.DocumentURI]bool),
	}

	// Server-initiated traffic is ignored; this client only issues
	// read-only queries.
	handler := jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
		if !req.Notif {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not handled"}
		}
		return nil, nil
	})

	client.conn = jsonrpc2.NewConn(ctx, stream, handler)

	go io.Copy(os.Stderr, stderr)

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, err
	}

	if err := client.initialize(ctx, absRoot); err != nil {
		cancel()
		_ = cmd.Process.Kill()
		return nil, err
	}

	return client, nil
}

func (c *Client) initialize(ctx context.Context, root string) error {
	params := &protocol.InitializeParams{
		ProcessID: int32(os.Getpid()),
		RootURI:   uri.File(root),
		ClientInfo: &protocol.ClientInfo{
			Name:    "lenscope",
			Version: "0.1",
		},
		Capabilities: protocol.ClientCapabilities{
			TextDocument: &protocol.TextDocumentClientCapabilities{
				Implementation: &protocol.ImplementationTextDocumentClientCapabilities{},
				DocumentSymbol: &protocol.DocumentSymbolClientCapabilities{
					HierarchicalDocumentSymbolSupport: true,
				},
			},
		},
	}
	var result protocol.InitializeResult
	if err := c.conn.Call(ctx, "initialize", params, &result); err != nil {
		return err
	}
	return c.conn.Notify(ctx, "initialized", &protocol.InitializedParams{})
}

// Close terminates the underlying process and JSON-RPC connection.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	if c.cancel != nil {
		c.cancel()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		_ = c.cmd.Process.Kill()
		_, _ = c.cmd.Process.Wait()
	}
	return nil
}

func (c *Client) ensureOpen(ctx context.Context, file string) error {
	docURI := uri.File(file)
	c.mu.Lock()
	if c.openedFiles[docURI] {
		c.mu.Unlock()
		return nil
	}
	c.openedFiles[docURI] = true
	c.mu.Unlock()

	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	params := protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        docURI,
			LanguageID: protocol.LanguageIdentifier(c.cfg.LanguageID),
			Version:    1,
			Text:       string(data),
		},
	}
	return c.conn.Notify(ctx, "textDocument/didOpen", params)
}

// Implementations satisfies lens.ImplementationService with a single
// textDocument/implementation call. Results come back in the one-based
// span form the resolver's reducer works in.
func (c *Client) Implementations(ctx context.Context, file string, pos lens.ServicePosition) ([]lens.FileSpan, error) {
	if err := c.ensureOpen(ctx, file); err != nil {
		return nil, err
	}
	params := protocol.ImplementationParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri.File(file)},
			Position:     wirePosition(pos),
		},
	}
	var resp []protocol.Location
	if err := c.conn.Call(ctx, "textDocument/implementation", params, &resp); err != nil {
		return nil, err
	}
	spans := make([]lens.FileSpan, 0, len(resp))
	for _, loc := range resp {
		spans = append(spans, locationSpan(loc))
	}
	return spans, nil
}

// DocumentSymbols fetches the file's symbol tree and returns it rooted at a
// synthetic file node. Both the hierarchical and the flat response shapes
// are accepted; flat results carry no identifier spans.
func (c *Client) DocumentSymbols(ctx context.Context, file string) (*lens.SymbolNode, error) {
	if err := c.ensureOpen(ctx, file); err != nil {
		return nil, err
	}
	params := protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri.File(file)},
	}
	var raw json.RawMessage
	if err := c.conn.Call(ctx, "textDocument/documentSymbol", params, &raw); err != nil {
		return nil, err
	}

	root := &lens.SymbolNode{Name: filepath.Base(file)}
	var docSymbols []protocol.DocumentSymbol
	if err := json.Unmarshal(raw, &docSymbols); err == nil && len(docSymbols) > 0 {
		for i := range docSymbols {
			root.Children = append(root.Children, symbolNode(&docSymbols[i]))
		}
		return root, nil
	}
	var infoSymbols []protocol.SymbolInformation
	if err := json.Unmarshal(raw, &infoSymbols); err == nil {
		for _, sym := range infoSymbols {
			root.Children = append(root.Children, &lens.SymbolNode{
				Name: sym.Name,
				Kind: symbolKind(sym.Kind),
				Span: displayRange(sym.Location.Range),
			})
		}
		return root, nil
	}
	return nil, errors.New("document symbol response not understood")
}

type stdioReadWriteCloser struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error)  { return s.reader.Read(p) }
func (s *stdioReadWriteCloser) Write(p []byte) (int, error) { return s.writer.Write(p) }
func (s *stdioReadWriteCloser) Close() error {
	_ = s.reader.Close()
	return s.writer.Close()
}
