package chord

import "github.com/jsphweid/voicings/model"

// Resolver turns chord symbols into spelled notes.
type Resolver struct {
	dict Dictionary
}

// NewResolver returns a Resolver backed by dict.
func NewResolver(dict Dictionary) *Resolver {
	return &Resolver{dict: dict}
}

// Resolve looks a symbol up as typed. Unknown symbols and symbols with no
// notes are not an error, they just don't resolve.
func (r *Resolver) Resolve(symbol string) (def model.ChordDefinition, ok bool) {
	// a misbehaving dictionary counts as an unknown symbol
	defer func() {
		if err := recover(); err != nil {
			def, ok = model.ChordDefinition{}, false
		}
	}()

	def, ok = r.dict.Lookup(symbol)
	if !ok || len(def.Notes) == 0 {
		return model.ChordDefinition{}, false
	}
	return def, true
}
