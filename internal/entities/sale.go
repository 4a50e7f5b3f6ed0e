package entities

type Sale struct {
	Name  string
	Start string
	End   string
}

func SaleFromDocument(d Document) Sale {
	return Sale{
		Name:  d.String("name"),
		Start: d.String("start_date"),
		End:   d.String("end_date"),
	}
}

type Admin struct {
	Email string
}

func AdminFromDocument(d Document) Admin {
	return Admin{Email: d.String("email")}
}
