// Package gocube models a 3x3x3 twisty puzzle and animates moves on it.
//
// The state lives in a Store of 27 cubies, each with an integer position in
// {-1,0,1}³ and one color per world direction. Moves turn a layer of nine
// cubies and relabel their colors. A Scheduler plays queued moves one at a
// time, publishing an interpolated Frame on every tick and committing each
// move to the store exactly once when its animation completes.
//
// # Quick Start
//
// Apply moves directly:
//
//	cube := gocube.NewCube()
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
//	cube.ApplyNotation("F B2 L' D")
//	fmt.Println("Solved:", cube.IsSolved())
//
// Animate them from a render loop:
//
//	tracker := gocube.NewTracker()
//	sched := gocube.NewScheduler(tracker, gocube.WithDuration(time.Second))
//	sched.EnqueueNotation("U R U'")
//	for range time.Tick(16 * time.Millisecond) {
//	    if sched.Tick(time.Now()) {
//	        draw(sched.Frame())
//	    }
//	}
//
// # Facelet Strings
//
// Decode and Encode use 54 characters in U R F D L B block order, nine per
// face in row-major order. Letters are case-insensitive and a space leaves a
// facelet unset.
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	gocube.R      // Right clockwise
//	gocube.RPrime // Right counter-clockwise
//	gocube.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package gocube
