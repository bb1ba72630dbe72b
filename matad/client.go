// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package matad

import (
	"context"
	"net"
	"time"

	"github.com/samo538/mata/afa"
	"github.com/samo538/mata/state"
)

// Client is a matad protocol client, the counterpart to Handler,
// modeled on the teacher's crisp.Client. Every round-trip method takes
// a context.Context: unlike the reasoning core, this is a networked
// boundary, so there is something real to cancel.
type Client struct {
	conn net.Conn
	io   *vu32io
}

// Dial connects to a matad server at addr.
func Dial(ctx context.Context, addr string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, io: newVu32Io(conn)}, nil
}

func (c *Client) applyDeadline(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dl, ok := ctx.Deadline(); ok {
		return c.conn.SetDeadline(dl)
	}
	return c.conn.SetDeadline(time.Time{})
}

// Close ends the session, sending OpQuit first so the server's accept
// loop can move to its next connection promptly.
func (c *Client) Close() error {
	c.io.writeu32(uint32(OpQuit))
	c.io.flush()
	return c.conn.Close()
}

// AddInitial marks s as an initial state on the server's Afa.
func (c *Client) AddInitial(ctx context.Context, s state.State) error {
	if err := c.applyDeadline(ctx); err != nil {
		return err
	}
	if err := c.io.writeu32(uint32(OpAddInitial)); err != nil {
		return err
	}
	if err := c.io.writeu32(uint32(s)); err != nil {
		return err
	}
	return c.io.flush()
}

// AddFinal marks s as a final state on the server's Afa.
func (c *Client) AddFinal(ctx context.Context, s state.State) error {
	if err := c.applyDeadline(ctx); err != nil {
		return err
	}
	if err := c.io.writeu32(uint32(OpAddFinal)); err != nil {
		return err
	}
	if err := c.io.writeu32(uint32(s)); err != nil {
		return err
	}
	return c.io.flush()
}

// AddTrans streams t to the server, which installs both the forward
// and inverse transition relation entries for it.
func (c *Client) AddTrans(ctx context.Context, t afa.Trans) error {
	if err := c.applyDeadline(ctx); err != nil {
		return err
	}
	if err := c.io.writeu32(uint32(OpAddTrans)); err != nil {
		return err
	}
	if err := c.io.writeu32(uint32(t.Src)); err != nil {
		return err
	}
	if err := c.io.writeu32(uint32(t.Symb)); err != nil {
		return err
	}
	clauses := t.Dst.Slice()
	if err := c.io.writeu32(uint32(len(clauses))); err != nil {
		return err
	}
	for _, clause := range clauses {
		states := clause.Slice()
		if err := c.io.writeu32(uint32(len(states))); err != nil {
			return err
		}
		for _, s := range states {
			if err := c.io.writeu32(uint32(s)); err != nil {
				return err
			}
		}
	}
	return c.io.flush()
}

// EmptyForwardWorklist asks the server to decide emptiness of the
// automaton built so far, via the forward worklist test.
func (c *Client) EmptyForwardWorklist(ctx context.Context) (bool, error) {
	return c.emptyQuery(ctx, OpEmptyForwardWorklist)
}

// EmptyBackwardWorklist asks the server to decide emptiness of the
// automaton built so far, via the backward worklist test.
func (c *Client) EmptyBackwardWorklist(ctx context.Context) (bool, error) {
	return c.emptyQuery(ctx, OpEmptyBackwardWorklist)
}

func (c *Client) emptyQuery(ctx context.Context, op Op) (bool, error) {
	if err := c.applyDeadline(ctx); err != nil {
		return false, err
	}
	if err := c.io.writeu32(uint32(op)); err != nil {
		return false, err
	}
	if err := c.io.flush(); err != nil {
		return false, err
	}
	r, err := c.io.readu32()
	if err != nil {
		return false, err
	}
	return r != 0, nil
}
