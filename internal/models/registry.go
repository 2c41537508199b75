package models

// Patient is a registry entry managed by the external record API.
type Patient struct {
	ID         int    `json:"id"`
	Name       string `json:"nome" binding:"required"`
	CPF        string `json:"cpf"`
	BirthDate  string `json:"data_nascimento"`
	Sex        string `json:"sexo"`
	Email      string `json:"email"`
	Phone      string `json:"telefone"`
	BirthPlace string `json:"naturalidade"`
	SectorCode int    `json:"cd_setor"`
	Active     bool   `json:"ativo"`
}

// Nutritionist is a professional account in the registry.
type Nutritionist struct {
	ID           int    `json:"id"`
	Name         string `json:"nome"`
	Email        string `json:"email"`
	Phone        string `json:"telefone"`
	Registration string `json:"matricula"`
}

// Sector is one hospital sector patients are assigned to.
type Sector struct {
	Code int    `json:"cd_setor"`
	Name string `json:"nome"`
}
