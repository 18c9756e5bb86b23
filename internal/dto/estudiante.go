package dto

import "github.com/samir-141/Gremar/internal/model"

// CrearEstudianteRequest cuerpo de POST /student/agregar.
// El id nunca lo aporta el cliente: lo genera el servicio.
type CrearEstudianteRequest struct {
	GR                   string `json:"GR"`
	DNI                  string `json:"DNI"`
	ApellidosNombres     string `json:"APELLIDOS_NOMBRES"`
	Sexo                 string `json:"SEXO"`
	Apoderado            string `json:"APODERADO"`
	Celular              string `json:"CELULAR"`
	SituacionMatricula   string `json:"SITUACIÓN_MATRICULA"`
	CompromisoDocumentos string `json:"COMPROMISO_DOCUMENTOS"`
	Apafa                string `json:"APAFA"`
	QaliWarma            string `json:"QALIWARMA"`
	TarjetaSalud         string `json:"TARJETA_SALUD"`
	Conadis              string `json:"CONADIS"`
	Direccion            string `json:"DIRECCIÓN"`
	Religion             string `json:"RELIGIÓN"`
	CelularAdicional     string `json:"CELULAR_ADICIONAL"`
	NombreApoderado      string `json:"NOMBRE"`
	Parentesco           string `json:"PARENTESCO"`
	Observacion          string `json:"OBSERVACIÓN"`
}

// AEstudiante materializa la solicitud como registro (sin id ni marcas de tiempo).
func (r *CrearEstudianteRequest) AEstudiante() model.Estudiante {
	return model.Estudiante{
		GR:                   r.GR,
		DNI:                  r.DNI,
		ApellidosNombres:     r.ApellidosNombres,
		Sexo:                 r.Sexo,
		Apoderado:            r.Apoderado,
		Celular:              r.Celular,
		SituacionMatricula:   r.SituacionMatricula,
		CompromisoDocumentos: r.CompromisoDocumentos,
		Apafa:                r.Apafa,
		QaliWarma:            r.QaliWarma,
		TarjetaSalud:         r.TarjetaSalud,
		Conadis:              r.Conadis,
		Direccion:            r.Direccion,
		Religion:             r.Religion,
		CelularAdicional:     r.CelularAdicional,
		NombreApoderado:      r.NombreApoderado,
		Parentesco:           r.Parentesco,
		Observacion:          r.Observacion,
	}
}

// EditarEstudianteRequest parche parcial de POST /student/editar/:id.
// Campos en puntero: nil significa "no tocar"; un valor (aunque sea la
// cadena vacía) reemplaza el existente. El id y createdAt son inmutables.
type EditarEstudianteRequest struct {
	GR                   *string `json:"GR"`
	DNI                  *string `json:"DNI"`
	ApellidosNombres     *string `json:"APELLIDOS_NOMBRES"`
	Sexo                 *string `json:"SEXO"`
	Apoderado            *string `json:"APODERADO"`
	Celular              *string `json:"CELULAR"`
	SituacionMatricula   *string `json:"SITUACIÓN_MATRICULA"`
	CompromisoDocumentos *string `json:"COMPROMISO_DOCUMENTOS"`
	Apafa                *string `json:"APAFA"`
	QaliWarma            *string `json:"QALIWARMA"`
	TarjetaSalud         *string `json:"TARJETA_SALUD"`
	Conadis              *string `json:"CONADIS"`
	Direccion            *string `json:"DIRECCIÓN"`
	Religion             *string `json:"RELIGIÓN"`
	CelularAdicional     *string `json:"CELULAR_ADICIONAL"`
	NombreApoderado      *string `json:"NOMBRE"`
	Parentesco           *string `json:"PARENTESCO"`
	Observacion          *string `json:"OBSERVACIÓN"`
}

// AplicarA fusiona el parche campo a campo sobre el registro existente.
func (r *EditarEstudianteRequest) AplicarA(e *model.Estudiante) {
	if r.GR != nil {
		e.GR = *r.GR
	}
	if r.DNI != nil {
		e.DNI = *r.DNI
	}
	if r.ApellidosNombres != nil {
		e.ApellidosNombres = *r.ApellidosNombres
	}
	if r.Sexo != nil {
		e.Sexo = *r.Sexo
	}
	if r.Apoderado != nil {
		e.Apoderado = *r.Apoderado
	}
	if r.Celular != nil {
		e.Celular = *r.Celular
	}
	if r.SituacionMatricula != nil {
		e.SituacionMatricula = *r.SituacionMatricula
	}
	if r.CompromisoDocumentos != nil {
		e.CompromisoDocumentos = *r.CompromisoDocumentos
	}
	if r.Apafa != nil {
		e.Apafa = *r.Apafa
	}
	if r.QaliWarma != nil {
		e.QaliWarma = *r.QaliWarma
	}
	if r.TarjetaSalud != nil {
		e.TarjetaSalud = *r.TarjetaSalud
	}
	if r.Conadis != nil {
		e.Conadis = *r.Conadis
	}
	if r.Direccion != nil {
		e.Direccion = *r.Direccion
	}
	if r.Religion != nil {
		e.Religion = *r.Religion
	}
	if r.CelularAdicional != nil {
		e.CelularAdicional = *r.CelularAdicional
	}
	if r.NombreApoderado != nil {
		e.NombreApoderado = *r.NombreApoderado
	}
	if r.Parentesco != nil {
		e.Parentesco = *r.Parentesco
	}
	if r.Observacion != nil {
		e.Observacion = *r.Observacion
	}
}
