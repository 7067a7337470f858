package main

var (
	HomeLogo = "/images/home/logo_3.png"

	HomeTitle  = []string{"Adaptative", "Digital"}
	HomeAccent = "Innovation"

	HomeSubtitle = []string{
		"Tecnología | Experiencia de Usuario",
		"Explora y descubre cómo transformamos ideas en realidades tecnológicas.",
	}

	ProjectsIntro = `Explora nuestros proyectos más destacados y las tecnologías implementadas.`

	TeamIntro = `Conoce a los "profesionales" que hicieron posible este proyecto.`

	AboutIntro = `Los objetivos, la meta y los valores que guían a nuestra organización.`

	AllTagsLabel = "Todos"

	UnavailableMessage = "No pudimos cargar este contenido. Inténtalo de nuevo en unos momentos."
)
