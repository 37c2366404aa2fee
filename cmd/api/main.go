// @title House Info API
// @version 1.0.0
// @description Finds the address in a house photo, geocodes it and returns demo property details.
// @BasePath /
package main

func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
