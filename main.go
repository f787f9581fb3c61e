// SPDX-License-Identifier: MPL-2.0

// Command helplint lints the inline help of command modules.
package main

import cmd "helplint-cli/cmd/helplint"

func main() {
	cmd.Execute()
}
