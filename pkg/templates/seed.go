package templates

import (
	"time"

	"github.com/google/uuid"
)

func seedTime(day int) time.Time {
	return time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC)
}

// Built-in demo templates matching the workspace defaults every new account
// starts with.
var seedTemplates = []Template{
	{
		ID:             uuid.MustParse("7f1a3c52-9a14-4a87-b7d0-1f20bb2a9101"),
		Kind:           KindEmail,
		Title:          "Email Follow-up",
		Author:         "Jean Camphuis",
		Status:         StatusPublished,
		Language:       "es",
		Tone:           "profesional",
		Length:         "media",
		Prompt:         "Redacta un email de seguimiento resumiendo los acuerdos de la reunión y los próximos pasos.",
		InsertCallLink: true,
		UpdatedAt:      seedTime(14),
	},
	{
		ID:        uuid.MustParse("b4c0a6de-52c1-4f2b-8a4e-38a0c2f49102"),
		Kind:      KindEmail,
		Title:     "Follow up AM",
		Author:    "Olivier Pruleau",
		Status:    StatusPublished,
		Language:  "es",
		Prompt:    "Genera un email breve para el account manager con los compromisos pendientes del cliente.",
		UpdatedAt: seedTime(21),
	},
	{
		ID:        uuid.MustParse("d2e8f1a0-6b3d-4c59-9e71-52b1d3e59103"),
		Kind:      KindEmail,
		Title:     "Follow up meeting Olivier",
		Author:    "Olivier Pruleau",
		Status:    StatusPublished,
		Language:  "es",
		Tone:      "cercano",
		Prompt:    "Escribe un seguimiento personal agradeciendo el tiempo y proponiendo la próxima reunión.",
		UpdatedAt: seedTime(21),
	},
	{
		ID:             uuid.MustParse("1a9b5e72-3f48-4d06-a582-69c2e4a69104"),
		Kind:           KindEmail,
		Title:          "Follow up Partners",
		Author:         "Paul Berloty",
		Status:         StatusPublished,
		Language:       "es",
		Length:         "corta",
		Prompt:         "Resume la conversación para el partner e incluye los materiales que se prometieron compartir.",
		InsertCallLink: true,
		UpdatedAt:      seedTime(7),
	},
	{
		ID:        uuid.MustParse("5c7d2b94-8e15-4f63-b190-7ad3f5b79105"),
		Kind:      KindEmail,
		Title:     "Interview followup Anne",
		Author:    "Anne Mikielski",
		Status:    StatusPublished,
		Language:  "en",
		Tone:      "formal",
		Prompt:    "Write a thank-you note after the interview covering the topics discussed and the next stage of the process.",
		UpdatedAt: seedTime(12),
	},
	{
		ID:        uuid.MustParse("9e3f6c16-0a27-4b85-c2ae-8be4a6c89106"),
		Kind:      KindEmail,
		Title:     "Mail post onboarding team",
		Author:    "Olivier Pruleau",
		Status:    StatusPublished,
		Language:  "es",
		Prompt:    "Redacta el email de bienvenida al equipo de onboarding con los accesos y fechas acordadas.",
		UpdatedAt: seedTime(21),
	},
	{
		ID:        uuid.MustParse("2b8e1d35-4c69-4a07-93bf-9cf5b7d99107"),
		Kind:      KindTask,
		Title:     "Seguimiento de Acción",
		Author:    "Jean Camphuis",
		Status:    StatusPublished,
		Prompt:    "Extrae los compromisos de la reunión y crea una tarea por cada uno con responsable y fecha.",
		UpdatedAt: seedTime(14),
	},
	{
		ID:        uuid.MustParse("6d4a9f58-7b82-4e31-a5d0-ad06c8ea9108"),
		Kind:      KindTask,
		Title:     "Revisión de Proyecto",
		Author:    "Olivier Pruleau",
		Status:    StatusDraft,
		Prompt:    "Genera las tareas de revisión del proyecto mencionadas durante la llamada.",
		UpdatedAt: seedTime(21),
	},
	{
		ID:        uuid.MustParse("0f6b3e7a-9d04-4c52-b7e1-be17d9fb9109"),
		Kind:      KindTask,
		Title:     "Preparación de Presentación",
		Author:    "Paul Berloty",
		Status:    StatusPublished,
		Prompt:    "Lista las tareas necesarias para preparar la presentación comprometida con el cliente.",
		UpdatedAt: seedTime(18),
	},
	{
		ID:        uuid.MustParse("4a2c7b9d-1e26-4f74-89a3-cf28eb0c9110"),
		Kind:      KindTask,
		Title:     "Análisis de Métricas",
		Author:    "Anne Mikielski",
		Status:    StatusPublished,
		Prompt:    "Crea tareas para recopilar y analizar las métricas que el cliente pidió revisar.",
		UpdatedAt: seedTime(12),
	},
	{
		ID:        uuid.MustParse("8e0d5a1f-3b48-4d96-95c5-d039fc1d9111"),
		Kind:      KindTask,
		Title:     "Planificación Sprint",
		Author:    "Jean Camphuis",
		Status:    StatusDraft,
		Prompt:    "Convierte los acuerdos técnicos de la reunión en tareas para el próximo sprint.",
		UpdatedAt: seedTime(10),
	},
}
