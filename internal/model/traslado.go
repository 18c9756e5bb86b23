package model

// Traslado ficha de traslado de un estudiante a otra institución.
type Traslado struct {
	ID                 string `json:"id"`
	DNI                string `json:"DNI"`
	ApellidosNombres   string `json:"APELLIDOS_NOMBRES"`
	InstitucionDestino string `json:"INSTITUCIÓN_DESTINO,omitempty"`
	Fecha              string `json:"FECHA,omitempty"`
	Observacion        string `json:"OBSERVACIÓN,omitempty"`
}
