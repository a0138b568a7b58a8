// main.go
package main

import "github.com/ariebrainware/healthghar/cmd"

// @title           HealthGhar API
// @version         1.0
// @description     Telehealth availability, booking and camp report service.
// @BasePath        /
// @securityDefinitions.apikey SessionToken
// @in              header
// @name            session-token
func main() {
	cmd.Execute()
}
