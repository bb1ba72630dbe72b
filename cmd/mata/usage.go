// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

var usage = `%s checks emptiness of an AFA described in textfmt.

It takes 1 argument, a path to a textfmt file, or "-" for stdin.

%s takes the following flags.

`
