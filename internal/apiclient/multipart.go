package apiclient

import (
	"bytes"
	"io"
	"mime/multipart"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
)

// MultipartForm acumula campos e arquivos para envio multipart/form-data.
// A ordem de escrita é a ordem de inserção.
type MultipartForm struct {
	parts []formPart
}

type formPart struct {
	field    string
	value    string
	filename string
	content  []byte
	isFile   bool
}

// NewMultipartForm cria um formulário vazio.
func NewMultipartForm() *MultipartForm {
	return &MultipartForm{}
}

// AddField adiciona um campo de texto.
func (f *MultipartForm) AddField(name, value string) *MultipartForm {
	f.parts = append(f.parts, formPart{field: name, value: value})
	return f
}

// AddFile adiciona um arquivo já lido em memória (anexos são limitados a
// poucos MB pelo cliente antes de chegar aqui).
func (f *MultipartForm) AddFile(field, filename string, content []byte) *MultipartForm {
	f.parts = append(f.parts, formPart{field: field, filename: filename, content: content, isFile: true})
	return f
}

// encode serializa o formulário e retorna o corpo e o content-type com boundary.
func (f *MultipartForm) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, p := range f.parts {
		if p.isFile {
			fw, err := writer.CreateFormFile(p.field, p.filename)
			if err != nil {
				return nil, "", core.WrapErrorf(err, "falha ao criar parte de arquivo '%s'", p.field)
			}
			if _, err := fw.Write(p.content); err != nil {
				return nil, "", core.WrapErrorf(err, "falha ao escrever arquivo '%s'", p.filename)
			}
			continue
		}
		if err := writer.WriteField(p.field, p.value); err != nil {
			return nil, "", core.WrapErrorf(err, "falha ao escrever campo '%s'", p.field)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", core.WrapErrorf(err, "falha ao finalizar formulário multipart")
	}
	return &buf, writer.FormDataContentType(), nil
}
