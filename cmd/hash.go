package cmd

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// work factor for the admin password, chosen to make brute forcing the
// single credential expensive
const hashCost = 12

var hashCommand = cobra.Command{
	Use:   "hash",
	Short: "generates the bcrypt hash for the admin password",
	Long:  `reads a password from the terminal and prints the bcrypt hash to put into admin.password-hash`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("password?")
		pwd, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			fmt.Printf("Unable to read password: %s", err)
			os.Exit(1)
			return
		}
		if len(pwd) == 0 {
			fmt.Println("empty password refused")
			os.Exit(1)
			return
		}
		hash, err := bcrypt.GenerateFromPassword(pwd, hashCost)
		if err != nil {
			fmt.Printf("Unable to hash password: %s", err)
			os.Exit(1)
			return
		}
		fmt.Println(string(hash))
	},
}
