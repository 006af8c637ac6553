////////////////////////////////////////////////////////////////////////////////
// Quadra DAO: quadratic-voting treasury governance for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	_ "quadra_dao/contract"
)

// main is left empty on purpose; the contract entrypoints are wasm exports.
func main() {

}
