// Package instance parses vector bin-packing instances written in the
// line-oriented text format of Brandao et al.:
//
//	d
//	C_1 ... C_d
//	n
//	w_1 ... w_d demand   (n lines)
//
// Every declared item type is expanded into demand identical items.
package instance
