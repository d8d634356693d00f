// Package service ties the engine to configuration presets and player
// sessions.
//
// A Session owns one GameEngine together with the render port and clock it
// was created with. The service records gameplay events (food eaten, game
// over, board full, restarts) on the session and logs session endings.
//
// Usage:
//
//	svc := service.NewGameService(configManager)
//	session, err := svc.NewSession(ctx, "classic", renderer, clock, 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	session.Engine.Start()
package service
