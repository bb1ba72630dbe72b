// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package matad

import (
	"context"
	"io"
	"log"
	"net"

	"github.com/samo538/mata/afa"
	"github.com/samo538/mata/state"
)

// Handler serves one connection against its own Afa, mirroring the
// teacher's crisp.Handler (one gini.Gini per connection) but holding an
// afa.Afa instead of a SAT solver.
type Handler struct {
	id    int
	aut   *afa.Afa
	trace bool
}

// NewHandler returns a Handler with a fresh, empty Afa.
func NewHandler(id int) *Handler {
	return &Handler{id: id, aut: afa.New(0)}
}

// Serve takes connections from cc until cc is closed, serving each one
// to completion before taking the next, exactly as crisp.Handler.serve
// does for a single worker slot. Once ctx is canceled, each connection
// stops being served before its next request is read and is closed.
func (h *Handler) Serve(ctx context.Context, cc <-chan net.Conn) {
	for conn := range cc {
		if h.trace {
			log.Printf("matad handler %d: serving %v", h.id, conn.RemoteAddr())
		}
		if err := h.serveConn(ctx, conn); err != nil && err != io.EOF {
			log.Printf("matad handler %d: %s", h.id, err)
		}
		conn.Close()
	}
}

func (h *Handler) serveConn(ctx context.Context, conn net.Conn) error {
	v := newVu32Io(conn)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		op, err := v.readu32()
		if err != nil {
			return err
		}
		switch Op(op) {
		case OpAddInitial:
			s, err := v.readu32()
			if err != nil {
				return err
			}
			h.aut.Grow(int(s) + 1)
			h.aut.AddInitial(state.State(s))
		case OpAddFinal:
			s, err := v.readu32()
			if err != nil {
				return err
			}
			h.aut.Grow(int(s) + 1)
			h.aut.AddFinal(state.State(s))
		case OpAddTrans:
			t, err := h.readTrans(v)
			if err != nil {
				return err
			}
			if err := h.aut.AddTrans(t); err != nil {
				return err
			}
			if err := h.aut.AddInverseTrans(t); err != nil {
				return err
			}
		case OpEmptyForwardWorklist:
			empty, err := h.aut.EmptyForwardWorklist()
			if err != nil {
				return err
			}
			if err := v.writeBool(empty); err != nil {
				return err
			}
			if err := v.flush(); err != nil {
				return err
			}
		case OpEmptyBackwardWorklist:
			empty, err := h.aut.EmptyBackwardWorklist()
			if err != nil {
				return err
			}
			if err := v.writeBool(empty); err != nil {
				return err
			}
			if err := v.flush(); err != nil {
				return err
			}
		case OpQuit:
			return nil
		default:
			return ErrUnknownOp
		}
	}
}

func (h *Handler) readTrans(v *vu32io) (afa.Trans, error) {
	src, err := v.readu32()
	if err != nil {
		return afa.Trans{}, err
	}
	symb, err := v.readu32()
	if err != nil {
		return afa.Trans{}, err
	}
	numClauses, err := v.readu32()
	if err != nil {
		return afa.Trans{}, err
	}
	hi := state.State(src)
	dst := state.NewNodes()
	for i := uint32(0); i < numClauses; i++ {
		clauseLen, err := v.readu32()
		if err != nil {
			return afa.Trans{}, err
		}
		n := state.NewStates()
		for j := uint32(0); j < clauseLen; j++ {
			s, err := v.readu32()
			if err != nil {
				return afa.Trans{}, err
			}
			n.Insert(state.State(s))
			if state.State(s) > hi {
				hi = state.State(s)
			}
		}
		dst.Insert(n)
	}
	h.aut.Grow(int(hi) + 1)
	return afa.Trans{Src: state.State(src), Symb: state.Symbol(symb), Dst: dst}, nil
}

func (v *vu32io) writeBool(b bool) error {
	if b {
		return v.writeu32(1)
	}
	return v.writeu32(0)
}
