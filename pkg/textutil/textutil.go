// Package textutil normaliza texto para los filtros de los listados de la
// consola: búsqueda por subcadena insensible a mayúsculas y a tildes
// ("Bogotá" encuentra "bogota" y viceversa).
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve s en minúsculas y sin diacríticos.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Entrada no transformable: comparar tal cual en minúsculas
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold indica si needle aparece como subcadena de haystack,
// ignorando mayúsculas y diacríticos. needle vacío siempre coincide.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}
