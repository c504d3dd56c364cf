// Standalone credential fingerprint generator. Reads one secret from
// stdin and prints its fingerprint, for provisioning users by hand.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ProfJake/lab10/pkg/helpers"
)

func main() {
	fmt.Print("Whats the input? ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}
	fmt.Println(helpers.Fingerprint(strings.TrimRight(line, "\r\n")))
}
