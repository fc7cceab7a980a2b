package ssh

import (
	"fmt"
	"net"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// DefaultTimeout bounds the connection attempt, not established sessions.
const DefaultTimeout = 30 * time.Second

// Client represents one authenticated SSH connection to a remote host,
// with a lazily opened SFTP sub-channel for file transfer.
type Client struct {
	Host     string
	User     string
	Port     int
	Password string

	opts   clientOptions
	client *ssh.Client
	sftp   *sftp.Client
}

type clientOptions struct {
	timeout time.Duration
	keyFile string
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

// WithTimeout overrides the connection timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// WithKeyFile adds public-key authentication from a private key file,
// tried alongside the password.
func WithKeyFile(path string) ClientOption {
	return func(o *clientOptions) {
		o.keyFile = path
	}
}

// NewClient creates a new SSH client for the given host
func NewClient(host, user string, port int, password string, opts ...ClientOption) *Client {
	if port == 0 {
		port = 22
	}
	options := clientOptions{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&options)
	}
	return &Client{
		Host:     host,
		User:     user,
		Port:     port,
		Password: password,
		opts:     options,
	}
}

// Connect establishes the SSH connection. The remote host key is accepted
// unconditionally; there is no trust store.
func (c *Client) Connect() error {
	auths, err := c.authMethods()
	if err != nil {
		return err
	}

	config := &ssh.ClientConfig{
		User:            c.User,
		Auth:            auths,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         c.opts.timeout,
	}

	addr := net.JoinHostPort(c.Host, fmt.Sprintf("%d", c.Port))
	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return Classify(fmt.Sprintf("connect to %s", addr), err)
	}

	c.client = client
	return nil
}

func (c *Client) authMethods() ([]ssh.AuthMethod, error) {
	var auths []ssh.AuthMethod

	if c.opts.keyFile != "" {
		signer, err := loadPrivateKey(c.opts.keyFile)
		if err != nil {
			return nil, err
		}
		auths = append(auths, ssh.PublicKeys(signer))
	}

	if c.Password != "" {
		auths = append(auths, ssh.Password(c.Password))
	}

	if len(auths) == 0 {
		return nil, &Error{Kind: KindConfigMissing, Op: "connect", Err: fmt.Errorf("no password or key file configured")}
	}

	return auths, nil
}

// SFTP returns the file-transfer sub-channel, opening it on first use.
// Its lifetime is bounded by the client's: Close tears it down too.
func (c *Client) SFTP() (*sftp.Client, error) {
	if c.client == nil {
		return nil, &Error{Kind: KindOther, Op: "open sftp", Err: fmt.Errorf("not connected")}
	}
	if c.sftp != nil {
		return c.sftp, nil
	}

	ch, err := sftp.NewClient(c.client)
	if err != nil {
		return nil, Classify("open sftp", err)
	}

	c.sftp = ch
	return ch, nil
}

// Close releases the SFTP channel and the SSH connection. It is safe to
// call on an unconnected client and to call more than once.
func (c *Client) Close() error {
	if c.sftp != nil {
		c.sftp.Close()
		c.sftp = nil
	}
	if c.client != nil {
		err := c.client.Close()
		c.client = nil
		return err
	}
	return nil
}

// IsConnected returns true if the client is connected
func (c *Client) IsConnected() bool {
	return c.client != nil
}

// NewSession creates a new SSH session
func (c *Client) NewSession() (*ssh.Session, error) {
	if c.client == nil {
		return nil, fmt.Errorf("not connected")
	}
	return c.client.NewSession()
}
