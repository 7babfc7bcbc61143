package main

import "harvesttracker/internal/app"

// @title           Harvest Tracker OTP Gateway
// @version         1.0
// @description     Phone-OTP login gateway proxying an external verification provider.
// @BasePath        /
func main() {
	app.Run()
}
