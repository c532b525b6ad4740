package chess

import "unicode"

// Catalog maps FEN letters to piece kinds for one variant and lists the
// kinds a pawn may promote to. A Catalog is never modified after creation.
type Catalog struct {
	byLetter   map[byte]Kind
	letters    [NumKinds]byte
	promotions []Kind
}

// NewCatalog builds a catalog from upper-case letters. Promotion kinds are
// generated in the order given.
func NewCatalog(letters map[byte]Kind, promotions ...Kind) *Catalog {
	c := &Catalog{
		byLetter:   make(map[byte]Kind, len(letters)),
		promotions: append([]Kind(nil), promotions...),
	}
	for l, k := range letters {
		upper := byte(unicode.ToUpper(rune(l)))
		c.byLetter[upper] = k
		c.letters[k] = upper
	}
	return c
}

// StandardCatalog holds the six orthodox pieces.
var StandardCatalog = NewCatalog(map[byte]Kind{
	'P': Pawn, 'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen, 'K': King,
}, Queen, Rook, Bishop, Knight)

// ShatranjCatalog writes the ferz as Q and the alfil as B, the way shatranj
// FENs are usually written.
var ShatranjCatalog = NewCatalog(map[byte]Kind{
	'P': Pawn, 'N': Knight, 'B': Alfil, 'R': Rook, 'Q': Ferz, 'K': King,
}, Ferz)

// Piece converts a FEN letter to a piece. Upper case is White.
func (c *Catalog) Piece(letter byte) (Piece, bool) {
	k, ok := c.byLetter[byte(unicode.ToUpper(rune(letter)))]
	if !ok {
		return NoPiece, false
	}
	colour := White
	if unicode.IsLower(rune(letter)) {
		colour = Black
	}
	return Piece{Kind: k, Colour: colour}, true
}

// Letter returns the FEN letter for a piece, lower case for Black.
func (c *Catalog) Letter(p Piece) byte {
	l := c.KindLetter(p.Kind)
	if p.Colour == Black {
		return byte(unicode.ToLower(rune(l)))
	}
	return l
}

// KindLetter returns the upper-case letter used for a kind.
func (c *Catalog) KindLetter(k Kind) byte {
	if k > NoKind && k < NumKinds && c.letters[k] != 0 {
		return c.letters[k]
	}
	return k.Letter()
}

// Has reports whether the kind belongs to this catalog.
func (c *Catalog) Has(k Kind) bool {
	return k > NoKind && k < NumKinds && c.letters[k] != 0
}

// Promotions returns the promotion targets. The slice must not be modified.
func (c *Catalog) Promotions() []Kind {
	return c.promotions
}

// CanPromoteTo reports whether k is a promotion target.
func (c *Catalog) CanPromoteTo(k Kind) bool {
	for _, p := range c.promotions {
		if p == k {
			return true
		}
	}
	return false
}
