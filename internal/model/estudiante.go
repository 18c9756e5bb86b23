package model

// Estudiante registro del padrón de estudiantes.
//
// Las claves JSON conservan los nombres originales de la ficha de matrícula
// (mayúsculas y tildes incluidas) porque el frontend y los datos ya
// persistidos las usan tal cual. GR, DNI, APELLIDOS_NOMBRES y SEXO son
// obligatorios; el resto son texto libre que se guarda y devuelve sin tocar.
type Estudiante struct {
	ID                   string `json:"id"                              firestore:"id"`
	GR                   string `json:"GR"                              firestore:"GR"`
	DNI                  string `json:"DNI"                             firestore:"DNI"`
	ApellidosNombres     string `json:"APELLIDOS_NOMBRES"               firestore:"APELLIDOS_NOMBRES"`
	Sexo                 string `json:"SEXO"                            firestore:"SEXO"`
	Apoderado            string `json:"APODERADO,omitempty"             firestore:"APODERADO"`
	Celular              string `json:"CELULAR,omitempty"               firestore:"CELULAR"`
	SituacionMatricula   string `json:"SITUACIÓN_MATRICULA,omitempty"   firestore:"SITUACIÓN_MATRICULA"`
	CompromisoDocumentos string `json:"COMPROMISO_DOCUMENTOS,omitempty" firestore:"COMPROMISO_DOCUMENTOS"`
	Apafa                string `json:"APAFA,omitempty"                 firestore:"APAFA"`
	QaliWarma            string `json:"QALIWARMA,omitempty"             firestore:"QALIWARMA"`
	TarjetaSalud         string `json:"TARJETA_SALUD,omitempty"         firestore:"TARJETA_SALUD"`
	Conadis              string `json:"CONADIS,omitempty"               firestore:"CONADIS"`
	Direccion            string `json:"DIRECCIÓN,omitempty"             firestore:"DIRECCIÓN"`
	Religion             string `json:"RELIGIÓN,omitempty"              firestore:"RELIGIÓN"`
	CelularAdicional     string `json:"CELULAR_ADICIONAL,omitempty"     firestore:"CELULAR_ADICIONAL"`
	NombreApoderado      string `json:"NOMBRE,omitempty"                firestore:"NOMBRE"`
	Parentesco           string `json:"PARENTESCO,omitempty"            firestore:"PARENTESCO"`
	Observacion          string `json:"OBSERVACIÓN,omitempty"           firestore:"OBSERVACIÓN"`
	CreatedAt            string `json:"createdAt,omitempty"             firestore:"createdAt"`
	UpdatedAt            string `json:"updatedAt,omitempty"             firestore:"updatedAt"`
}

// CamposObligatoriosCompletos indica si los cuatro campos requeridos
// vienen con contenido.
func (e *Estudiante) CamposObligatoriosCompletos() bool {
	return e.GR != "" && e.DNI != "" && e.ApellidosNombres != "" && e.Sexo != ""
}
