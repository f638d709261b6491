package survey

// Built-in questionnaire definitions. These mirror the published forms:
// editing a number here would silently re-interpret stored answers, so
// changes are append-only.

var exitReasonCategories = []string{
	"Ambiente laboral negativo",
	"Anticipar terminación de contrato",
	"Cambio en condiciones acordadas",
	"Cambio de proyecto, estudios u objetivos personales",
	"Carga laboral o estrés alto",
	"Choque con estilo de liderazgo",
	"Deficiente onboarding/inducción",
	"Desalineación con valores de la empresa",
	"Dificultad para conciliar trabajo y vida personal",
	"Falta de capacitación continua",
	"Falta de oportunidades de crecimiento",
	"Inconformidad con comisiones",
	"Insatisfacción con beneficios",
	"Mejor oferta laboral",
	"Motivos personales",
	"Problemas de conectividad",
	"Problemas de salud personal",
	"Presión por metas",
	"Rol no acorde a perfil",
}

var joinReasons = []string{
	"Oportunidad de crecimiento y desarrollo profesional",
	"Cultura organizacional",
	"Plan de carrera y formación interna",
	"Estabilidad laboral",
	"Beneficios y compensación",
	"Trabajo remoto",
	"Recomendación de amigos o conocidos",
	"Posicionamiento y reputación de la empresa en el mercado",
	"Oportunidad de primer empleo o experiencia laboral",
	"Otro (¿cuál?)",
}

// GeneralCatalog is the default form served to every area. It covers
// identity questions, the 1-10 experience scale, SÍ/NO recommendation
// and return questions, and the six-item satisfaction matrix.
func GeneralCatalog() *Catalog {
	return &Catalog{
		Name: "general",
		Questions: []Question{
			{Number: 3, Prompt: "¿Cuál es tu nombre completo?", Type: TypeText, Required: true},
			{Number: 4, Prompt: "¿Cuál es tu número de Identificación?", Type: TypeText, Required: true},
			{Number: 5, Prompt: "Confirma tu fecha de retiro", Type: TypeDate, Required: true},
			{Number: 6, Prompt: "¿Cuál fue el tiempo total que duraste en Siigo?", Type: TypeRadio, Required: true,
				Options: []string{
					"Menos de 2 meses",
					"Menos de 6 meses",
					"6 meses a 1 año",
					"1-2 años",
					"2-5 años",
					"Más de 5 años",
				}},
			{Number: 7, Prompt: "¿En cuál área estabas?", Type: TypeRadio, Required: true,
				Options: []string{
					"Cultura",
					"Customer Success",
					"Finance & Administration",
					"Fundación Siigo",
					"Marketing",
					"People Ops",
					"Product",
					"Sales",
					"Strategy",
					"Tech",
				}},
			{Number: 8, Prompt: "¿En cuál país estabas trabajando?", Type: TypeRadio, Required: true,
				Options: []string{"Colombia", "Ecuador", "Uruguay", "México", "Perú"}},
			{Number: 9, Prompt: "¿Cuál el es nombre del último líder que tuviste en Siigo?", Type: TypeText, Required: true},
			{Number: 10, Prompt: "¿Por favor confirma cuál fue el motivo principal que te llevó a tomar la decisión de retirarte de Siigo?", Type: TypeTextarea, Required: true},
			{Number: 11, Prompt: "Selecciona la categoría que mejor representa el motivo principal de tu decisión de retirarte:", Type: TypeRadio, Required: true,
				Options: exitReasonCategories},
			{Number: 12, Prompt: "En una escala del 1 al 10, ¿Qué tan buena fue tu experiencia laboral en Siigo?", Type: TypeScale, Required: true,
				Min: 1, Max: 10, Labels: []string{"Nada satisfecho", "Muy satisfecho"}},
			{Number: 13, Prompt: "¿Recomendarías trabajar en Siigo a un amigo o familiar?", Type: TypeRadio, Required: true,
				Options: []string{"SÍ", "NO"}},
			{Number: 14, Prompt: "¿Qué fue lo que más disfrutaste de trabajar en Siigo?", Type: TypeTextarea, Required: true},
			{Number: 15, Prompt: "¿Qué crees que podríamos mejorar como organización?", Type: TypeTextarea, Required: true},
			{Number: 16, Prompt: "Durante tu experiencia en Siigo, ¿cómo calificarías tu nivel de satisfacción con los siguientes aspectos?", Type: TypeMatrix, Required: true,
				Items: []string{
					"Liderazgo de tu líder directo",
					"Ambiente laboral en tu equipo",
					"Cultura organizacional y valores",
					"Beneficios emocionales o no económicos",
					"Modalidad de trabajo remoto",
					"Proceso de formación y entrenamiento",
				},
				Scale:       []int{1, 2, 3, 4, 5},
				ScaleLabels: []string{"Muy insatisfecho", "Insatisfecho", "Neutral", "Satisfecho", "Muy satisfecho"}},
			{Number: 17, Prompt: "¿Puedes contarme a qué empresa te cambiaste y qué te gustó de su propuesta?", Type: TypeTextarea, Required: false},
			{Number: 18, Prompt: "¿Estarías abierto(a) a regresar a Siigo en el futuro si se presenta una oportunidad que se alinee con tus intereses?", Type: TypeRadio, Required: true,
				Options: []string{"SÍ", "NO"}},
		},
		Roles: map[Role]int{
			RoleFullName:           3,
			RoleIdentification:     4,
			RoleExitDate:           5,
			RoleTenure:             6,
			RoleArea:               7,
			RoleCountry:            8,
			RoleLastLeader:         9,
			RoleExitReasonDetail:   10,
			RoleExitReasonCategory: 11,
			RoleExperienceRating:   12,
			RoleWouldRecommend:     13,
			RoleWhatEnjoyed:        14,
			RoleWhatToImprove:      15,
			RoleSatisfaction:       16,
			RoleNewCompanyInfo:     17,
			RoleWouldReturn:        18,
		},
	}
}

// SalesCatalog is the variant served to the Sales area, with the
// selection-process and training sections. The numbering keeps the
// gaps of the published form (there is no 24).
func SalesCatalog() *Catalog {
	return &Catalog{
		Name: "sales",
		Questions: []Question{
			{Number: 1, Section: "01| Experiencia general en Siigo", Prompt: "¿Cómo fue tu experiencia general en Siigo?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Negativa", "Excelente"}},
			{Number: 2, Section: "01| Experiencia general en Siigo", Prompt: "¿Qué razones te llevaron a elegir trabajar en Siigo?", Type: TypeDropdown, Required: true,
				Options: joinReasons},
			{Number: 3, Section: "01| Experiencia general en Siigo", Prompt: "¿Se cumplieron tus expectativas en Siigo?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Nada", "Totalmente"}},
			{Number: 4, Section: "01| Experiencia general en Siigo", Prompt: "¿Por qué?", Type: TypeTextarea, Required: false,
				Placeholder: "Cuéntanos más sobre el cumplimiento de tus expectativas"},
			{Number: 5, Section: "02| Clima y Cultura Siigo", Prompt: "¿Cómo describirías el ambiente de trabajo con tu equipo y en Siigo en general?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Muy negativo", "Muy positivo"}},
			{Number: 6, Section: "02| Clima y Cultura Siigo", Prompt: "¿Cómo podrías describir tu relación con tu líder o entrenador?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Decepcionante", "Excelente"}},
			{Number: 7, Section: "02| Clima y Cultura Siigo", Prompt: "¿Por qué?", Type: TypeTextarea, Required: false,
				Placeholder: "Cuéntanos más sobre tu relación con tu líder"},
			{Number: 8, Section: "02| Clima y Cultura Siigo", Prompt: "¿En qué medida crees que se vivió la cultura Siigo en tu día a día?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Nada", "Totalmente"}},
			{Number: 9, Section: "02| Clima y Cultura Siigo", Prompt: "¿Por qué?", Type: TypeTextarea, Required: false,
				Placeholder: "Comparte tu experiencia sobre la cultura Siigo"},
			{Number: 10, Section: "03| Proceso de selección y contratación", Prompt: "¿Cómo te sentiste durante tu proceso de selección y contratación en Siigo?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Muy mal", "Excelente"}},
			{Number: 11, Section: "03| Proceso de selección y contratación", Prompt: "¿Qué tan clara y transparente fue la información que recibiste sobre salario, comisiones, horarios y beneficios?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Nada clara", "Muy clara"}},
			{Number: 12, Section: "03| Proceso de selección y contratación", Prompt: "¿Encontraste alguna diferencia entre lo que se te comunicó en el proceso y lo que realmente viviste en tu rol?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Mucha diferencia", "Ninguna diferencia"}},
			{Number: 13, Section: "03| Proceso de selección y contratación", Prompt: "¿Sientes que te contactamos a tiempo para la firma de contrato y el inicio de tu inducción?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Nada oportuno", "Totalmente oportuno"}},
			{Number: 14, Section: "03| Proceso de selección y contratación", Prompt: "Desde tu ingreso, ¿contaste con todas las herramientas tecnológicas (computador, teclado, mouse etc) necesarias para desempeñarte en tu rol?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Nada", "Totalmente"}},
			{Number: 15, Section: "03| Proceso de selección y contratación", Prompt: "Algún comentario adicional", Type: TypeTextarea, Required: false,
				Placeholder: "Comparte cualquier comentario adicional sobre el proceso"},
			{Number: 16, Section: "04| Entrenamiento e Inducción", Prompt: "¿La metodología de aprendizaje te ayudó a comprender bien nuestro producto, las plataformas tecnológicas (synergy, teams, oracle etc) y los procesos?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Muy negativo", "Muy positivo"}},
			{Number: 17, Section: "04| Entrenamiento e Inducción", Prompt: "¿Por qué?", Type: TypeTextarea, Required: false,
				Placeholder: "Explica tu experiencia con la metodología de aprendizaje"},
			{Number: 18, Section: "04| Entrenamiento e Inducción", Prompt: "¿Qué tan acompañado(a) te sentiste por tu formador en esas primeras semanas?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Nada acompañado", "Totalmente acompañado"}},
			{Number: 19, Section: "04| Entrenamiento e Inducción", Prompt: "¿Por qué?", Type: TypeTextarea, Required: false,
				Placeholder: "Cuéntanos sobre el acompañamiento recibido"},
			{Number: 20, Section: "04| Entrenamiento e Inducción", Prompt: "¿Recibiste feedback oportuno durante tu proceso de formación?", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Nada oportuno", "Totalmente oportuno"}},
			{Number: 21, Section: "04| Entrenamiento e Inducción", Prompt: "¿Por qué?", Type: TypeTextarea, Required: false,
				Placeholder: "Comparte tu experiencia con el feedback recibido"},
			{Number: 22, Section: "05| Siigo Satisfacción", Prompt: "Recomendarías trabajar en Siigo a un amigo o familiar", Type: TypeScale, Required: true,
				Min: 0, Max: 10, Labels: []string{"Para nada", "Absolutamente"}},
			{Number: 23, Section: "07| Razones", Prompt: "Selecciona la categoría que mejor representa el motivo principal de tu decisión de retirarte:", Type: TypeDropdown, Required: true,
				Options: exitReasonCategories},
			{Number: 25, Section: "07| Razones", Prompt: "¿Por qué?", Type: TypeTextarea, Required: false,
				Placeholder: "Explica con más detalle tu motivo principal"},
			{Number: 26, Section: "07| Razones", Prompt: "¿Qué crees que Siigo podría haber hecho para que decidieras quedarte?", Type: TypeTextarea, Required: true,
				Placeholder: "Tu respuesta nos ayuda a mejorar"},
			{Number: 27, Section: "07| Razones", Prompt: "¿Qué fue lo que más influyó en tu decisión de salir de Siigo?", Type: TypeTextarea, Required: true,
				Placeholder: "Comparte los factores más importantes"},
			{Number: 28, Section: "07| Razones", Prompt: "¿Tu decisión de salir fue algo que venías pensando desde hace tiempo o surgió recientemente?", Type: TypeRadio, Required: true,
				Options: []string{"Hace mucho tiempo", "Últimos meses", "Decisión reciente", "Otro (¿Cuál?)"}},
		},
		Roles: map[Role]int{
			RoleExperienceRating:   1,
			RoleLastLeader:         6,
			RoleWouldRecommend:     22,
			RoleExitReasonCategory: 23,
			RoleExitReasonDetail:   25,
			RoleWhatToImprove:      26,
		},
	}
}
