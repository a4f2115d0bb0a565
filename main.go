// SPDX-License-Identifier: MPL-2.0

package main

import cmd "stistools-cli/cmd/stistools"

func main() {
	cmd.Execute()
}
