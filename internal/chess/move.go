package chess

// MoveType tags the variant of a Move.
type MoveType int

const (
	Normal MoveType = iota
	// DoubleStep is a pawn's two-square advance; it creates an en passant target.
	DoubleStep
	EnPassant
	Castling
	Promotion
)

// String returns the name of the move type.
func (t MoveType) String() string {
	names := []string{"Normal", "DoubleStep", "EnPassant", "Castling", "Promotion"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Move is one ply. It carries everything needed to apply and undo itself,
// so it is only meaningful on the board it was generated from.
type Move struct {
	Type MoveType

	// From and To are the moving piece's squares. For castling they are the
	// king's origin and destination.
	From Square
	To   Square

	// Piece is the piece that moves.
	Piece Piece

	// Captured is the piece taken (NoPiece if none). CaptureSquare is where
	// it stood, which differs from To only for en passant.
	Captured      Piece
	CaptureSquare Square

	// RookFrom and RookTo are set for castling only.
	RookFrom Square
	RookTo   Square

	// Promotion is the kind promoted to, or NoKind.
	Promotion Kind
}

// IsCapture returns true if this move takes a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Type == Promotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Type == Castling
}

// Apply plays the move on b.
func (m Move) Apply(b *Board) {
	switch m.Type {
	case Castling:
		b.Remove(m.From)
		b.Remove(m.RookFrom)
		b.Set(m.To, m.Piece)
		b.Set(m.RookTo, Piece{Kind: Rook, Colour: m.Piece.Colour})
	case EnPassant:
		b.Remove(m.CaptureSquare)
		b.Relocate(m.From, m.To)
	case Promotion:
		b.Remove(m.From)
		b.Set(m.To, Piece{Kind: m.Promotion, Colour: m.Piece.Colour})
	default:
		b.Relocate(m.From, m.To)
	}
}

// Undo reverses Apply on the same board.
func (m Move) Undo(b *Board) {
	switch m.Type {
	case Castling:
		b.Remove(m.To)
		b.Remove(m.RookTo)
		b.Set(m.RookFrom, Piece{Kind: Rook, Colour: m.Piece.Colour})
		b.Set(m.From, m.Piece)
	case EnPassant:
		b.Remove(m.To)
		b.Set(m.From, m.Piece)
		b.Set(m.CaptureSquare, m.Captured)
	default:
		b.Set(m.To, m.Captured)
		b.Set(m.From, m.Piece)
	}
}
