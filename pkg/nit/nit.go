// Package nit utilidades para el NIT colombiano: cálculo y verificación del
// dígito de verificación según el algoritmo módulo 11 de la DIAN.
package nit

import (
	"fmt"
	"unicode"
)

// pesos para el cálculo del dígito de verificación (Orden Administrativa 4 de
// 1989, DIAN). Se aplican a los 9 primeros dígitos, de izquierda a derecha.
var pesos = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// DigitoVerificacion calcula el dígito de verificación para los 9 primeros
// dígitos del NIT. Acepta "123456789", "123.456.789-1" o "1234567891".
func DigitoVerificacion(nit string) (byte, error) {
	digitos := soloDigitos(nit)
	if len(digitos) < 9 {
		return 0, fmt.Errorf("nit: se requieren al menos 9 dígitos, se encontraron %d", len(digitos))
	}
	var suma int
	for i, d := range digitos[:9] {
		suma += int(d-'0') * pesos[i]
	}
	resto := suma % 11
	if resto == 0 || resto == 1 {
		return byte('0' + resto), nil
	}
	return byte('0' + (11 - resto)), nil
}

// DigitoCoincide informa si el NIT trae dígito de verificación (décimo
// dígito) y si coincide con el calculado. Un NIT de 9 dígitos, sin DV,
// devuelve (false, nil): no hay nada que comparar.
func DigitoCoincide(nit string) (bool, error) {
	digitos := soloDigitos(nit)
	if len(digitos) != 10 {
		return false, nil
	}
	esperado, err := DigitoVerificacion(nit)
	if err != nil {
		return false, err
	}
	if digitos[9] != esperado {
		return false, fmt.Errorf("nit: dígito de verificación inválido: esperado %c, recibido %c", esperado, digitos[9])
	}
	return true, nil
}

func soloDigitos(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
