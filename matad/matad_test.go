// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package matad

import (
	"context"
	"net"
	"testing"

	"github.com/samo538/mata/afa"
	"github.com/samo538/mata/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientServerRoundTrip(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	ctx := context.Background()

	h := NewHandler(0)
	cc := make(chan net.Conn, 1)
	cc <- server
	close(cc)
	go h.Serve(ctx, cc)

	c := &Client{conn: client, io: newVu32Io(client)}

	require.NoError(t, c.AddInitial(ctx, 0))
	require.NoError(t, c.AddFinal(ctx, 0))
	require.NoError(t, c.AddTrans(ctx, afa.Trans{
		Src:  0,
		Symb: 0,
		Dst:  state.NewNodes(state.NewStates(0)),
	}))

	empty, err := c.EmptyForwardWorklist(ctx)
	require.NoError(t, err)
	assert.False(t, empty)
}
