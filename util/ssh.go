// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package util

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"net"

	"golang.org/x/crypto/ssh"
	"golang.org/x/term"
)

// Console represents an SSH console instance.
type Console struct {
	// Banner is the login welcome banner
	Banner string
	// Help is the `help` command output
	Help string
	// Handler is the terminal command handler
	Handler func(*term.Terminal, string) error
	// Listener is the network listener for incoming connections
	Listener net.Listener
	// Term is the terminal instance of the active session
	Term *term.Terminal
}

// ptySize parses the terminal dimensions of pty-req (RFC4254 6.2) and
// window-change (RFC4254 6.7) requests.
func ptySize(reqType string, payload []byte) (w int, h int, err error) {
	off := 0

	switch reqType {
	case "pty-req":
		if len(payload) < 4 {
			return 0, 0, errors.New("malformed pty-req request")
		}

		off = 4 + int(binary.BigEndian.Uint32(payload[0:4]))
	case "window-change":
	default:
		return 0, 0, fmt.Errorf("unsupported request %s", reqType)
	}

	if len(payload) < off+8 {
		return 0, 0, fmt.Errorf("malformed %s request", reqType)
	}

	w = int(binary.BigEndian.Uint32(payload[off:]))
	h = int(binary.BigEndian.Uint32(payload[off+4:]))

	return
}

func (c *Console) session(conn ssh.Channel) {
	defer conn.Close()

	log.SetOutput(io.MultiWriter(log.Writer(), c.Term))
	defer log.SetOutput(log.Writer())

	fmt.Fprintf(c.Term, "%s\n", c.Banner)
	fmt.Fprintf(c.Term, "%s\n", string(c.Term.Escape.Cyan)+c.Help+string(c.Term.Escape.Reset))

	for {
		cmd, err := c.Term.ReadLine()

		if err == io.EOF {
			break
		}

		if err != nil {
			log.Printf("readline error: %v", err)
			continue
		}

		if err = c.Handler(c.Term, cmd); err == io.EOF {
			break
		}

		if err != nil {
			fmt.Fprintf(c.Term, "error: %v\n", err)
		}
	}

	log.Printf("closing ssh connection")
}

func (c *Console) handleChannel(newChannel ssh.NewChannel) {
	if t := newChannel.ChannelType(); t != "session" {
		_ = newChannel.Reject(ssh.UnknownChannelType, fmt.Sprintf("unknown channel type: %s", t))
		return
	}

	conn, requests, err := newChannel.Accept()

	if err != nil {
		log.Printf("error accepting channel, %v", err)
		return
	}

	c.Term = term.NewTerminal(conn, "")
	c.Term.SetPrompt(string(c.Term.Escape.Red) + "> " + string(c.Term.Escape.Reset))

	go c.session(conn)

	go func() {
		for req := range requests {
			switch req.Type {
			case "shell":
				// do not accept payload commands
				if len(req.Payload) == 0 {
					_ = req.Reply(true, nil)
				}
			case "pty-req", "window-change":
				w, h, err := ptySize(req.Type, req.Payload)

				if err != nil {
					log.Print(err)
					continue
				}

				_ = c.Term.SetSize(w, h)

				if req.WantReply {
					_ = req.Reply(true, nil)
				}
			}
		}
	}()
}

func (c *Console) listen(srv *ssh.ServerConfig) {
	for {
		conn, err := c.Listener.Accept()

		if err != nil {
			log.Printf("error accepting connection, %v", err)
			continue
		}

		sshConn, chans, reqs, err := ssh.NewServerConn(conn, srv)

		if err != nil {
			log.Printf("error accepting handshake, %v", err)
			continue
		}

		log.Printf("new ssh connection from %s (%s)", sshConn.RemoteAddr(), sshConn.ClientVersion())

		go ssh.DiscardRequests(reqs)

		go func() {
			for newChannel := range chans {
				go c.handleChannel(newChannel)
			}
		}()
	}
}

// Start instantiates an SSH console on the console listener.
func (c *Console) Start() (err error) {
	if c.Listener == nil {
		return errors.New("missing listener")
	}

	srv := &ssh.ServerConfig{
		NoClientAuth: true,
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)

	if err != nil {
		return fmt.Errorf("private key generation error, %v", err)
	}

	signer, err := ssh.NewSignerFromKey(key)

	if err != nil {
		return fmt.Errorf("key conversion error, %v", err)
	}

	log.Printf("starting ssh server (%s)", ssh.FingerprintSHA256(signer.PublicKey()))

	srv.AddHostKey(signer)

	go c.listen(srv)

	return
}
