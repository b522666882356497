package main

import "github.com/tenantive/accounts-api/cmd"

func main() {
	cmd.Execute()
}
