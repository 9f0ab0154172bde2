package meetings

import "time"

// Seed data for local development and demos. The records intentionally use
// relative display labels ("Hoy", "Ayer") so the listing always shows a mix
// of upcoming and past meetings regardless of when it runs.

var seedRecords = []Record{
	{
		ID:           "1",
		Title:        "Kickoff meeting",
		Host:         "Ejecutivo de cuentas",
		Client:       "Acme Corp",
		Datetime:     "Hoy, 15:30",
		Duration:     "54:00",
		Tag:          "Ventas • Baseline",
		ThumbIndex:   1,
		PendingTasks: 2,
	},
	{
		ID:           "2",
		Title:        "Demostración + ROI",
		Host:         "Lina Acosta",
		Client:       "Monex",
		Datetime:     "Hoy, 16:00",
		Duration:     "29:59",
		Tag:          "Ventas • Baseline",
		ThumbIndex:   2,
		PendingTasks: 0,
	},
	{
		ID:           "3",
		Title:        "Seguimos conversando",
		Host:         "Lina Acosta",
		Client:       "Compartamos Perú",
		Datetime:     "Ayer, 12:07",
		Duration:     "55:22",
		Tag:          "Ventas • Baseline",
		ThumbIndex:   1,
		PendingTasks: 3,
	},
}

var seedDetails = map[string]Detail{
	"1": {
		Record:      seedRecords[0],
		Type:        "Kickoff",
		Seller:      "Ejecutivo de cuentas",
		DurationMin: 54,
		Summary: "Reunión inicial con Acme Corp para definir el alcance del " +
			"piloto. Se acordaron los criterios de éxito y los responsables " +
			"de cada frente antes de la demostración técnica.",
		Participants: []Participant{
			{ID: "p1", Name: "Ejecutivo de cuentas", Email: "cuentas@samu.ia", Organization: "Samu.ia", Role: RoleHost, SpeakPct: 55},
			{ID: "p2", Name: "María Torres", Email: "maria.torres@acme.com", Organization: "Acme Corp", Role: RoleClient, SpeakPct: 45},
		},
		Actions: []ActionItem{
			{ID: "a1", Label: "Compartir agenda del piloto"},
			{ID: "a2", Label: "Confirmar acceso al sandbox"},
		},
	},
	"2": {
		Record:      seedRecords[1],
		Type:        "Discovery",
		Seller:      "Javier Altmann",
		DurationMin: 32,
		Summary: "La reunión entre Javier y Yamila se centró en explorar cómo " +
			"Yamila utiliza la herramienta Samu en su trabajo diario. Javier, " +
			"el entrevistador, hizo preguntas abiertas para entender el proceso " +
			"de trabajo de Yamila, quien trabaja en el equipo comercial de " +
			"Visma. Yamila explicó que utiliza Samu principalmente como ayuda " +
			"memoria y para generar minutas detalladas de las reuniones, lo que " +
			"le ahorra tiempo al no tener que repreguntar a los clientes. " +
			"También mencionó que utiliza Google Calendar para agendar sus " +
			"reuniones y que, aunque no usa mucho el CRM, encuentra útil la " +
			"funcionalidad de Samu para gestionar compromisos y tareas. La " +
			"conversación fue exploratoria, con un enfoque en entender las " +
			"necesidades y el flujo de trabajo de Yamila, sin ser una llamada " +
			"de ventas directa.",
		Participants: []Participant{
			{ID: "p1", Name: "Yamila Juri", Email: "yamila.juri@visma.com", Organization: "Visma", Role: RoleClient, SpeakPct: 52},
			{ID: "p2", Name: "Javier Altmann", Email: "javier@samu.ia", Organization: "Samu.ia", Role: RoleHost, SpeakPct: 48},
		},
		Actions: []ActionItem{
			{ID: "a1", Label: "Enviar caso de éxito de banca"},
			{ID: "a2", Label: "Coordinar POC la próxima semana"},
			{ID: "a3", Label: "Compartir documentación de API"},
		},
		Objections: []Objection{
			{ID: "o1", Text: "Yamila considera que Samu tiene demasiadas funcionalidades avanzadas para sus necesidades actuales.", Status: ObjectionHandled},
			{ID: "o2", Text: "Preocupación por la integración con sistemas legacy existentes.", Status: ObjectionImprovement},
			{ID: "o3", Text: "Dudas sobre el ROI a corto plazo de la implementación.", Status: ObjectionNotHandled},
		},
		Transcript: []TranscriptEntry{
			{Offset: "00:00", Speaker: "Javier Altmann", Text: "Hola Yamila, ¿cómo estás? Gracias por tomarte el tiempo para esta reunión."},
			{Offset: "00:03", Speaker: "Yamila Juri", Text: "Hola Javier, muy bien gracias. No hay problema, tengo curiosidad por saber más sobre Samu."},
			{Offset: "00:10", Speaker: "Javier Altmann", Text: "Perfecto. Me gustaría conocer un poco más sobre cómo trabajas actualmente. ¿Podrías contarme sobre tu día a día en el equipo comercial de Visma?"},
			{Offset: "00:18", Speaker: "Yamila Juri", Text: "Claro. Trabajo principalmente con clientes potenciales, tengo muchas reuniones durante el día. Uso Google Calendar para organizarme y el CRM de la empresa, aunque no tanto como debería."},
			{Offset: "00:32", Speaker: "Javier Altmann", Text: "Interesante. ¿Y cómo haces el seguimiento de las reuniones? ¿Tomas notas, grabas las llamadas?"},
			{Offset: "00:40", Speaker: "Yamila Juri", Text: "Normalmente tomo notas manualmente, pero a veces se me olvidan detalles importantes. Me encantaría tener algo que me ayude con eso."},
			{Offset: "00:52", Speaker: "Javier Altmann", Text: "Exactamente para eso está Samu. Te permite grabar automáticamente las reuniones, generar transcripciones y extraer tareas automáticamente. ¿Has usado algo similar antes?"},
			{Offset: "01:05", Speaker: "Yamila Juri", Text: "No, nunca he usado algo así. Suena muy útil, especialmente para las minutas. Siempre me toma mucho tiempo escribirlas después de las reuniones."},
			{Offset: "01:18", Speaker: "Javier Altmann", Text: "Sí, esa es una de las principales ventajas. También puede generar emails de seguimiento automáticamente basados en lo que se habló en la reunión."},
			{Offset: "01:28", Speaker: "Yamila Juri", Text: "Eso sí que sería útil. ¿Y qué tan preciso es? A veces las herramientas automáticas no captan bien el contexto."},
			{Offset: "01:38", Speaker: "Javier Altmann", Text: "Es una buena pregunta. La precisión ha mejorado mucho, pero siempre recomendamos revisar el contenido antes de enviarlo. ¿Te gustaría que te muestre cómo funciona?"},
			{Offset: "01:50", Speaker: "Yamila Juri", Text: "Sí, me encantaría ver una demo. También me interesa saber sobre la integración con nuestros sistemas actuales."},
		},
		Insights: []InsightSection{
			{Label: "Sugerencias de Mejora", Items: []string{
				"Poder configurar las tareas para que estén más asociadas a cómo piensa el usuario",
				"Mejorar la integración automática cuando se une tarde a las reuniones",
				"Personalizar los tipos de insights según el rol del usuario",
			}},
			{Label: "Interacción con Chat IA", Items: []string{
				"Lo ha usado para buscar información sobre competidores en reuniones",
				"Consulta sobre mejores prácticas de seguimiento comercial",
				"Busca contexto histórico de clientes antes de reuniones importantes",
			}},
			{Label: "Uso de Emails Automáticos", Items: []string{
				"No lo había visto antes, pero le gustó la funcionalidad de generar emails de seguimiento",
				"Interés en templates personalizables según tipo de reunión",
				"Quiere probar la función de envío automático con revisión previa",
			}},
			{Label: "Confianza en Detección de Tareas", Items: []string{
				"Le sirve como ayuda memoria, pero no le presta mucha atención a la puntuación",
				"Prefiere revisar manualmente las tareas antes de marcarlas como completas",
				"Encuentra útil la categorización automática de tareas por prioridad",
			}},
			{Label: "Pain Points Principales", Items: []string{
				"A veces las reuniones no se suman automáticamente a Samu si se une tarde",
				"Dificultad para integrar con el CRM actual de la empresa",
				"Necesita más tiempo para acostumbrarse a confiar en las transcripciones automáticas",
			}},
			{Label: "Oportunidades de Venta", Items: []string{
				"Alto interés en funcionalidades de email automático",
				"Necesidad clara de mejor gestión de minutas y seguimiento",
				"Potencial para upgrade a plan empresarial con más integraciones",
			}},
			{Label: "Siguientes Pasos", Items: []string{
				"Programar demo técnica con equipo de IT para evaluar integraciones",
				"Enviar caso de éxito de empresa similar en sector financiero",
				"Coordinar trial de 30 días con funcionalidades específicas",
			}},
		},
		Sentiment: "Positivo - muestra interés genuino y ve valor claro en la solución",
	},
	"3": {
		Record:      seedRecords[2],
		Type:        "Seguimiento",
		Seller:      "Lina Acosta",
		DurationMin: 55,
		Summary: "Llamada de seguimiento con Compartamos Perú para revisar las " +
			"dudas abiertas de la demo anterior y acordar los siguientes pasos " +
			"del proceso de evaluación.",
		Participants: []Participant{
			{ID: "p1", Name: "Lina Acosta", Email: "lina@samu.ia", Organization: "Samu.ia", Role: RoleHost, SpeakPct: 47},
			{ID: "p2", Name: "Carlos Núñez", Email: "cnunez@compartamos.pe", Organization: "Compartamos Perú", Role: RoleClient, SpeakPct: 53},
		},
		Actions: []ActionItem{
			{ID: "a1", Label: "Enviar propuesta comercial actualizada"},
			{ID: "a2", Label: "Agendar sesión con el equipo de seguridad"},
			{ID: "a3", Label: "Compartir matriz de cumplimiento"},
		},
	},
}

var seedSchedule = []ScheduleEvent{
	{ID: "1", Title: "Home", Start: 8 * time.Hour, End: 20 * time.Hour, Tag: "Personal"},
	{ID: "2", Title: "Workout", Start: 6 * time.Hour, End: 8 * time.Hour, Tag: "Salud"},
	{
		ID: "3", Title: "To-do's", Start: 8 * time.Hour, End: 9 * time.Hour, Tag: "Foco", PendingTasks: 4,
		Tasks: []ScheduleTask{
			{ID: "t1", Description: "Revisar emails pendientes de respuesta"},
			{ID: "t2", Description: "Completar reporte mensual de ventas"},
			{ID: "t3", Description: "Organizar documentos del proyecto Alpha", Completed: true},
			{ID: "t4", Description: "Programar reunión con equipo de marketing"},
			{ID: "t5", Description: "Actualizar base de datos de clientes"},
		},
	},
	{
		ID: "4", Title: "Pipeline Management", Start: 9 * time.Hour, End: 10 * time.Hour, Tag: "Ventas", PendingTasks: 1,
		Tasks: []ScheduleTask{
			{ID: "t6", Description: "Hacer seguimiento con leads de la semana pasada"},
			{ID: "t7", Description: "Actualizar forecast trimestral", Completed: true},
		},
	},
	{
		ID: "5", Title: "Demo con Accivalores + Atom…", Start: 12 * time.Hour, End: 12*time.Hour + 15*time.Minute,
		Tag: "Reunión", Location: "Google Meet", PendingTasks: 2,
		Tasks: []ScheduleTask{
			{ID: "t8", Description: "Enviar email de seguimiento"},
			{ID: "t9", Description: "Investigar sobre la posibilidad de integrar un bot en WhatsApp para automatizar la carga de datos"},
			{ID: "t10", Description: "Averiguar si Samu puede integrarse con Sheets para completar campos automáticamente"},
		},
	},
	{ID: "6", Title: "Lunch", Start: 13 * time.Hour, End: 14 * time.Hour, Tag: "Break"},
}
