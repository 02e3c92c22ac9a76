package custody

import "fmt"

// CodigoPatrimonial formatea el código patrimonial a partir del prefijo de
// propiedad y el valor de la secuencia: EQP-0001, EQAL-0012, EQP-10000.
// El relleno a 4 dígitos se mantiene por compatibilidad con los códigos ya
// impresos en etiquetas; valores mayores simplemente crecen.
func CodigoPatrimonial(prefijo string, secuencia int64) string {
	return fmt.Sprintf("%s%04d", prefijo, secuencia)
}
