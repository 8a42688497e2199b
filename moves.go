package gocube

// Quarter and half turns of every face, in facelet block order.
//
//	sched.Enqueue(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
var (
	U      = Move{Face: FaceU, Turn: CW}
	UPrime = Move{Face: FaceU, Turn: CCW}
	U2     = Move{Face: FaceU, Turn: Double}

	R      = Move{Face: FaceR, Turn: CW}
	RPrime = Move{Face: FaceR, Turn: CCW}
	R2     = Move{Face: FaceR, Turn: Double}

	F      = Move{Face: FaceF, Turn: CW}
	FPrime = Move{Face: FaceF, Turn: CCW}
	F2     = Move{Face: FaceF, Turn: Double}

	D      = Move{Face: FaceD, Turn: CW}
	DPrime = Move{Face: FaceD, Turn: CCW}
	D2     = Move{Face: FaceD, Turn: Double}

	L      = Move{Face: FaceL, Turn: CW}
	LPrime = Move{Face: FaceL, Turn: CCW}
	L2     = Move{Face: FaceL, Turn: Double}

	B      = Move{Face: FaceB, Turn: CW}
	BPrime = Move{Face: FaceB, Turn: CCW}
	B2     = Move{Face: FaceB, Turn: Double}
)

// AllMoves lists the 18 face turns in block order U, R, F, D, L, B.
var AllMoves = []Move{
	U, UPrime, U2,
	R, RPrime, R2,
	F, FPrime, F2,
	D, DPrime, D2,
	L, LPrime, L2,
	B, BPrime, B2,
}

// Common sequences. Six repetitions of SexyMove return to the start.
var (
	SexyMove        = mustMoves("R U R' U'")
	InverseSexyMove = mustMoves("U R U' R'")
	TPerm           = mustMoves("R U R' U' R' F R2 U' R' U' R U R' F'")
)

func mustMoves(s string) []Move {
	moves, err := ParseMovesStrict(s)
	if err != nil {
		panic(err)
	}
	return moves
}
