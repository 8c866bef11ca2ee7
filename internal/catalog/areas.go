package catalog

// Question bank inspired by the DigCompEdu and OpenEdu frameworks.
// 24 questions across 7 areas; each question offers six skill levels
// (option index 0–5).

var areas = []Area{
	{
		ID:          1,
		Title:       "Compromiso Profesional",
		ShortTitle:  "Compromiso",
		Description: "Uso de tecnologías digitales para la comunicación, la colaboración con colegas y el desarrollo profesional propio.",
		Questions: []Question{
			{
				ID:   1,
				Text: "¿Cómo utilizas los canales digitales para comunicarte con estudiantes y colegas?",
				Options: []string{
					"No utilizo canales digitales para comunicarme.",
					"Uso el correo electrónico de forma ocasional.",
					"Uso regularmente el correo y la mensajería institucional.",
					"Combino varios canales según el propósito de la comunicación.",
					"Selecciono y ajusto los canales según el destinatario y evalúo su eficacia.",
					"Diseño estrategias de comunicación digital y ayudo a otros a mejorar las suyas.",
				},
			},
			{
				ID:   2,
				Text: "¿Con qué frecuencia colaboras con otros docentes mediante herramientas digitales?",
				Options: []string{
					"Nunca colaboro mediante herramientas digitales.",
					"Intercambio materiales por correo de vez en cuando.",
					"Comparto documentos en la nube con mi equipo.",
					"Co-creo materiales con colegas en plataformas colaborativas.",
					"Coordino proyectos colaborativos usando gestores y pizarras compartidas.",
					"Lidero comunidades docentes en línea y promuevo la colaboración abierta.",
				},
			},
			{
				ID:   3,
				Text: "¿Cómo reflexionas sobre tu propia práctica docente digital?",
				Options: []string{
					"No he reflexionado sobre mi práctica digital.",
					"Ocasionalmente pienso en qué herramientas funcionaron en clase.",
					"Reviso mis clases y anoto qué recursos digitales mejorar.",
					"Contrasto mi práctica con la de colegas y marcos de referencia.",
					"Mantengo un registro sistemático (blog, portafolio) de mi práctica.",
					"Publico mis reflexiones y recibo retroalimentación de una comunidad amplia.",
				},
			},
			{
				ID:   4,
				Text: "¿Participas en formación continua en línea para tu desarrollo profesional?",
				Options: []string{
					"No participo en formación en línea.",
					"He explorado algún curso en línea sin completarlo.",
					"Completo cursos en línea cuando mi institución los ofrece.",
					"Busco activamente cursos y webinarios según mis necesidades.",
					"Sigo itinerarios formativos propios y aplico lo aprendido en el aula.",
					"Diseño o imparto formación en línea para otros docentes.",
				},
			},
		},
	},
	{
		ID:          2,
		Title:       "Recursos Digitales",
		ShortTitle:  "Recursos",
		Description: "Búsqueda, creación, adaptación y gestión responsable de recursos educativos digitales.",
		Questions: []Question{
			{
				ID:   5,
				Text: "¿Cómo seleccionas recursos digitales para tus clases?",
				Options: []string{
					"No busco recursos digitales.",
					"Uso el primer resultado que encuentro en un buscador.",
					"Busco en repositorios educativos conocidos.",
					"Comparo varios recursos con criterios de calidad y pertinencia.",
					"Evalúo recursos según objetivos, accesibilidad y licencia antes de usarlos.",
					"Curo colecciones de recursos y las comparto con criterios documentados.",
				},
			},
			{
				ID:   6,
				Text: "¿Creas o adaptas recursos digitales propios?",
				Options: []string{
					"No creo ni adapto recursos digitales.",
					"Modifico ligeramente presentaciones o documentos existentes.",
					"Adapto recursos de otros a mi contexto y estudiantes.",
					"Creo recursos propios con herramientas de autor sencillas.",
					"Diseño recursos interactivos y multimedia alineados al currículo.",
					"Publico recursos propios de alta calidad que otros docentes reutilizan.",
				},
			},
			{
				ID:   7,
				Text: "¿Cómo proteges los datos personales y el contenido sensible al gestionar recursos?",
				Options: []string{
					"No considero la protección de datos.",
					"Evito compartir datos evidentes como listas de notas.",
					"Uso las plataformas institucionales para información sensible.",
					"Configuro permisos de acceso y reviso qué comparto.",
					"Aplico sistemáticamente criterios de privacidad y licencias en mis materiales.",
					"Defino pautas de protección de datos que otros docentes siguen.",
				},
			},
		},
	},
	{
		ID:          3,
		Title:       "Pedagogía Digital",
		ShortTitle:  "Pedagogía",
		Description: "Diseño e implementación de la enseñanza con tecnologías digitales al servicio del aprendizaje.",
		Questions: []Question{
			{
				ID:   8,
				Text: "¿Cómo integras herramientas digitales en tus clases?",
				Options: []string{
					"No integro herramientas digitales en clase.",
					"Proyecto presentaciones o videos ocasionalmente.",
					"Incluyo una actividad digital sencilla por unidad.",
					"Diseño secuencias que combinan actividades presenciales y digitales.",
					"Implemento modelos como aula invertida o aprendizaje mixto.",
					"Creo experiencias de aprendizaje complejas mediadas por múltiples herramientas.",
				},
			},
			{
				ID:   9,
				Text: "¿Cómo apoyas la colaboración entre estudiantes con medios digitales?",
				Options: []string{
					"Mis estudiantes no colaboran con medios digitales.",
					"Permito que compartan archivos entre ellos.",
					"Propongo trabajos grupales con documentos compartidos.",
					"Estructuro proyectos colaborativos con roles y herramientas definidas.",
					"Superviso y retroalimento la colaboración en línea de forma continua.",
					"Los estudiantes autogestionan proyectos colaborativos complejos en línea.",
				},
			},
			{
				ID:   10,
				Text: "¿Ofreces acompañamiento o tutoría a través de medios digitales?",
				Options: []string{
					"No ofrezco acompañamiento digital.",
					"Respondo dudas puntuales por correo.",
					"Mantengo un canal estable para consultas de estudiantes.",
					"Programo sesiones de tutoría en línea periódicas.",
					"Combino tutoría síncrona y asíncrona según las necesidades detectadas.",
					"Diseño sistemas de acompañamiento digital personalizados y proactivos.",
				},
			},
			{
				ID:   11,
				Text: "¿Fomentas el aprendizaje autorregulado con apoyo de tecnologías?",
				Options: []string{
					"No trabajo la autorregulación con tecnologías.",
					"Recomiendo a veces aplicaciones de estudio.",
					"Pido a los estudiantes planificar tareas con herramientas digitales.",
					"Uso plataformas donde los estudiantes siguen su propio progreso.",
					"Enseño estrategias de metacognición apoyadas en datos de la plataforma.",
					"Los estudiantes definen metas, monitorean y ajustan su aprendizaje digitalmente.",
				},
			},
		},
	},
	{
		ID:          4,
		Title:       "Evaluación y Retroalimentación",
		ShortTitle:  "Evaluación",
		Description: "Uso de tecnologías digitales para evaluar el aprendizaje y entregar retroalimentación oportuna.",
		Questions: []Question{
			{
				ID:   12,
				Text: "¿Utilizas herramientas digitales para evaluar a tus estudiantes?",
				Options: []string{
					"No uso herramientas digitales de evaluación.",
					"He probado algún cuestionario en línea aislado.",
					"Aplico cuestionarios auto-corregibles con regularidad.",
					"Combino formatos digitales variados (rúbricas, portafolios, pruebas).",
					"Diseño evaluaciones formativas digitales integradas en la secuencia didáctica.",
					"Construyo sistemas de evaluación digital que otros docentes adoptan.",
				},
			},
			{
				ID:   13,
				Text: "¿Cómo analizas la información sobre el progreso de tus estudiantes?",
				Options: []string{
					"No reviso datos de progreso.",
					"Miro las calificaciones al cierre del período.",
					"Reviso periódicamente los registros de la plataforma.",
					"Identifico estudiantes en riesgo a partir de métricas básicas.",
					"Cruzo datos de varias fuentes para ajustar mi enseñanza.",
					"Aplico analíticas de aprendizaje y comparto hallazgos con mi comunidad.",
				},
			},
			{
				ID:   14,
				Text: "¿Cómo entregas retroalimentación con apoyo digital?",
				Options: []string{
					"No entrego retroalimentación digital.",
					"Envío la calificación sin comentarios.",
					"Añado comentarios escritos en las tareas digitales.",
					"Entrego retroalimentación oportuna y específica por medios digitales.",
					"Uso formatos multimodales (audio, video) adaptados a cada estudiante.",
					"Mis estudiantes usan la retroalimentación digital para autoevaluarse y mejorar.",
				},
			},
		},
	},
	{
		ID:          5,
		Title:       "Empoderamiento del Estudiantado",
		ShortTitle:  "Empoderamiento",
		Description: "Accesibilidad, inclusión, personalización y participación activa de todos los estudiantes mediante lo digital.",
		Questions: []Question{
			{
				ID:   15,
				Text: "¿Garantizas la accesibilidad de tus recursos y actividades digitales?",
				Options: []string{
					"No considero la accesibilidad.",
					"Atiendo problemas de acceso cuando alguien los reporta.",
					"Activo opciones básicas como subtítulos o contraste.",
					"Reviso mis materiales con pautas de accesibilidad antes de publicarlos.",
					"Diseño desde el inicio con principios de accesibilidad universal.",
					"Aplico el Diseño Universal para el Aprendizaje y asesoro a otros en accesibilidad.",
				},
			},
			{
				ID:   16,
				Text: "¿Personalizas las actividades digitales según las necesidades de cada estudiante?",
				Options: []string{
					"Todos mis estudiantes hacen exactamente lo mismo.",
					"Doy tiempo extra a quien lo necesita.",
					"Ofrezco versiones alternativas de algunas tareas.",
					"Diseño actividades multinivel con opciones de formato y dificultad.",
					"Uso plataformas adaptativas para itinerarios personalizados.",
					"Cada estudiante sigue un plan personalizado que co-construimos con datos.",
				},
			},
			{
				ID:   17,
				Text: "¿Promueves la participación activa de los estudiantes mediante tecnologías?",
				Options: []string{
					"La tecnología en mi clase es solo expositiva.",
					"Uso ocasionalmente encuestas o votaciones en vivo.",
					"Incorporo actividades interactivas en la mayoría de mis clases.",
					"Los estudiantes crean contenidos digitales como parte del curso.",
					"Los estudiantes investigan y resuelven problemas reales con tecnología.",
					"Los estudiantes lideran proyectos con impacto fuera del aula.",
				},
			},
		},
	},
	{
		ID:          6,
		Title:       "Competencia Digital del Estudiantado",
		ShortTitle:  "Comp. Estudiantil",
		Description: "Desarrollo de la alfabetización informacional, la comunicación, la creación de contenidos y el uso seguro y responsable.",
		Questions: []Question{
			{
				ID:   18,
				Text: "¿Enseñas a tus estudiantes a buscar y evaluar información en línea?",
				Options: []string{
					"No trabajo la búsqueda de información.",
					"Les indico páginas concretas que deben consultar.",
					"Explico cómo buscar con palabras clave.",
					"Enseño criterios para evaluar la fiabilidad de las fuentes.",
					"Diseño actividades donde contrastan fuentes y detectan desinformación.",
					"Mis estudiantes verifican información de forma autónoma y enseñan a otros.",
				},
			},
			{
				ID:   19,
				Text: "¿Tus estudiantes crean contenidos digitales en tus asignaturas?",
				Options: []string{
					"Mis estudiantes no crean contenidos digitales.",
					"Entregan documentos de texto simples.",
					"Elaboran presentaciones o pósteres digitales.",
					"Producen artefactos variados: videos, podcasts, infografías.",
					"Crean contenidos complejos respetando licencias y derechos de autor.",
					"Publican contenidos para audiencias reales con criterios profesionales.",
				},
			},
			{
				ID:   20,
				Text: "¿Trabajas el uso seguro y el bienestar digital con tus estudiantes?",
				Options: []string{
					"No abordo el uso seguro de la tecnología.",
					"Menciono riesgos cuando surge algún incidente.",
					"Dedico sesiones puntuales a la seguridad en línea.",
					"Integro la huella digital y el ciberacoso en el currículo.",
					"Los estudiantes analizan casos y elaboran sus propias normas de convivencia digital.",
					"Coordino programas de ciudadanía digital a nivel institucional.",
				},
			},
			{
				ID:   21,
				Text: "¿Cómo desarrollas la comunicación y colaboración digital de tus estudiantes?",
				Options: []string{
					"No trabajo la comunicación digital del estudiantado.",
					"Les pido usar el correo institucional para entregas.",
					"Propongo foros o chats moderados de la asignatura.",
					"Diseño actividades donde gestionan su identidad digital al colaborar.",
					"Los estudiantes colaboran en línea con participantes de otros cursos o centros.",
					"Mis estudiantes participan en comunidades digitales auténticas de su ámbito.",
				},
			},
		},
	},
	{
		ID:          7,
		Title:       "Educación Abierta",
		ShortTitle:  "Ed. Abierta",
		Description: "Uso, creación y difusión de Recursos Educativos Abiertos y prácticas educativas abiertas.",
		Questions: []Question{
			{
				ID:   22,
				Text: "¿Utilizas Recursos Educativos Abiertos (REA) en tu enseñanza?",
				Options: []string{
					"No conozco los REA.",
					"He oído hablar de los REA pero no los uso.",
					"Uso REA de repositorios confiables de vez en cuando.",
					"Integro REA regularmente y verifico sus licencias.",
					"Adapto y remezclo REA atribuyendo correctamente la autoría.",
					"Creo y publico REA propios con licencias abiertas.",
				},
			},
			{
				ID:   23,
				Text: "¿Conoces y aplicas las licencias Creative Commons?",
				Options: []string{
					"No conozco las licencias Creative Commons.",
					"Sé que existen pero no distingo sus tipos.",
					"Identifico los tipos básicos de licencia al usar recursos.",
					"Elijo recursos según lo que su licencia permite y atribuyo la autoría.",
					"Licencio mis propios materiales y explico las licencias a estudiantes.",
					"Asesoro a mi institución en políticas de licenciamiento abierto.",
				},
			},
			{
				ID:   24,
				Text: "¿Participas en prácticas educativas abiertas?",
				Options: []string{
					"No participo en prácticas educativas abiertas.",
					"He asistido a alguna actividad abierta en línea.",
					"Invito ocasionalmente a expertos externos por videoconferencia.",
					"Publico trabajos del curso con licencias abiertas.",
					"Colaboro en proyectos abiertos interinstitucionales.",
					"Lidero iniciativas de ciencia ciudadana o educación abierta con mis estudiantes.",
				},
			},
		},
	},
}
