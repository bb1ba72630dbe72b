// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

var usage = `%s runs a matad server.

It takes 1 argument, an address on which to serve, in the form

	host:port

%s takes the following flags.

`
