// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package matad

import (
	"context"
	"log"
	"net"
)

// ListenAndServe accepts connections on addr and dispatches each to its
// own Handler, backed by its own Afa, until ctx is canceled: unlike the
// teacher's crisp server, which pools a fixed number of solver workers
// because solving is CPU-bound, matad's antichain operations are cheap
// enough that a goroutine per connection is the simpler and sufficient
// choice.
func ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	id := 0
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		id++
		h := NewHandler(id)
		cc := make(chan net.Conn, 1)
		cc <- conn
		close(cc)
		go func() {
			h.Serve(ctx, cc)
		}()
		log.Printf("matad: accepted connection %d from %v", id, conn.RemoteAddr())
	}
}
