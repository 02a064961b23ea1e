/*
Command chomsky transforms context-free grammars into Chomsky Normal Form.

Grammars are read in the text format of package gramtext, either from a file
or from stdin. Sub-commands:

    chomsky normalize [file]   print the grammar in Chomsky Normal Form
    chomsky check [file]       validate a grammar and check if it is in CNF
    chomsky stages [file]      summarize every stage of the normalization
    chomsky repl               interactive shell for step-by-step normalization
    chomsky example            print an example grammar

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
