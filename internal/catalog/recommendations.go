package catalog

// Tier is a competency level derived from an area's average score.
type Tier string

const (
	TierNovice     Tier = "novice"
	TierIntegrator Tier = "integrator"
	TierExpert     Tier = "expert"
)

// Label returns the Spanish display name for the tier.
func (t Tier) Label() string {
	switch t {
	case TierNovice:
		return "Novel"
	case TierIntegrator:
		return "Integrador"
	case TierExpert:
		return "Experto"
	}
	return string(t)
}

// Description returns a short Spanish description of what the tier
// means, used in plan prompts and result cards.
func (t Tier) Description() string {
	switch t {
	case TierNovice:
		return "Estás dando tus primeros pasos en el uso de tecnologías digitales para la enseñanza."
	case TierIntegrator:
		return "Integras herramientas digitales en tu práctica con criterio y de forma habitual."
	case TierExpert:
		return "Usas las tecnologías digitales de forma estratégica e innovadora, y guías a otros docentes."
	}
	return ""
}

// Recommendation returns the static advice text for an area at a given
// tier. Returns empty string for an unknown area or tier.
func Recommendation(areaID int, tier Tier) string {
	byTier, ok := recommendations[areaID]
	if !ok {
		return ""
	}
	return byTier[tier]
}

var recommendations = map[int]map[Tier]string{
	1: {
		TierNovice:     "Empieza por familiarizarte con una única plataforma de comunicación digital (como el LMS de tu institución o Google Classroom). Úsala para publicar anuncios y compartir archivos. Participa en un foro o grupo en línea de tu especialidad para observar cómo interactúan otros profesionales.",
		TierIntegrator: "Explora herramientas de colaboración más avanzadas como Trello para gestión de proyectos o Miro para pizarras colaborativas. Intenta liderar un pequeño proyecto colaborativo con compañeros usando estas herramientas. Empieza un blog o e-portfolio para reflexionar sistemáticamente sobre tu práctica.",
		TierExpert:     "Crea y lidera una comunidad de práctica en línea para docentes de tu región o especialidad. Experimenta con formatos innovadores de desarrollo profesional, como micro-credenciales o \"unconferences\". Publica tus reflexiones y recursos para una audiencia global.",
	},
	2: {
		TierNovice:     "Utiliza repositorios de recursos educativos abiertos (REA) como Procomún, OER Commons o Khan Academy para buscar materiales. Aprende los conceptos básicos de las licencias Creative Commons para entender cómo puedes usar y compartir recursos legalmente.",
		TierIntegrator: "Adapta y remezcla recursos existentes para que se ajusten mejor a tus estudiantes. Utiliza herramientas de autor sencillas (como Genially o Canva) para crear tus propios recursos interactivos. Organiza tus recursos en una plataforma en la nube (Google Drive, OneDrive) y compártelos con tus compañeros.",
		TierExpert:     "Diseña y publica tus propios Recursos Educativos Abiertos de alta calidad. Contribuye a proyectos de creación de recursos a nivel institucional o nacional. Enseña a otros docentes cómo crear, licenciar y compartir sus propios recursos digitales de forma efectiva.",
	},
	3: {
		TierNovice:     "Integra una actividad digital sencilla por semana, como un cuestionario en línea (Kahoot!, Socrative) o un foro de discusión. Concéntrate en que la tecnología apoye un objetivo de aprendizaje claro, en lugar de usarla por usarla.",
		TierIntegrator: "Diseña secuencias de aprendizaje que combinen actividades presenciales y en línea (modelo Flipped Classroom o Blended Learning). Utiliza herramientas colaborativas (Google Docs, Padlet) para que los estudiantes trabajen en proyectos grupales. Ofrece tutorías en línea.",
		TierExpert:     "Crea itinerarios de aprendizaje personalizados usando plataformas adaptativas. Diseña experiencias de aprendizaje complejas basadas en proyectos o resolución de problemas que requieran el uso avanzado de múltiples herramientas digitales por parte de los estudiantes.",
	},
	4: {
		TierNovice:     "Utiliza herramientas digitales para crear cuestionarios auto-corregibles (Google Forms, Microsoft Forms) que te ahorren tiempo y den feedback inmediato. Explora cómo el LMS de tu centro puede registrar las calificaciones y el progreso básico de los estudiantes.",
		TierIntegrator: "Implementa estrategias de evaluación formativa usando herramientas digitales, como e-portfolios para seguir el progreso a largo plazo o herramientas de coevaluación en línea (Peergrade). Analiza las métricas básicas del LMS para identificar estudiantes en riesgo.",
		TierExpert:     "Diseña sistemas de evaluación alternativos basados en el análisis de datos de aprendizaje (learning analytics). Utiliza herramientas avanzadas para dar feedback multimodal (video, audio) y personalizado. Capacita a otros docentes en el uso ético y efectivo de los datos de aprendizaje.",
	},
	5: {
		TierNovice:     "Asegúrate de que los recursos digitales que utilizas (textos, videos) sean accesibles. Por ejemplo, activa los subtítulos automáticos en los videos. Ofrece a los estudiantes la opción de entregar tareas en diferentes formatos (texto, audio, video).",
		TierIntegrator: "Utiliza herramientas digitales específicas para atender necesidades diversas (lectores de pantalla, software de dictado). Diseña actividades multinivel donde los estudiantes puedan elegir el grado de dificultad. Fomenta el uso de la tecnología para que los estudiantes investiguen temas de su interés.",
		TierExpert:     "Crea un entorno de aprendizaje digital totalmente inclusivo y personalizado, aplicando los principios del Diseño Universal para el Aprendizaje (DUA). Empodera a los estudiantes para que utilicen la tecnología para liderar sus propios proyectos y crear soluciones a problemas reales (aprendizaje-servicio).",
	},
	6: {
		TierNovice:     "Dedica tiempo en clase a enseñar explícitamente cómo buscar información de forma efectiva y cómo evaluar la fiabilidad de las fuentes en línea. Realiza una actividad sencilla de creación de contenido, como crear una presentación colaborativa.",
		TierIntegrator: "Diseña proyectos que requieran que los estudiantes colaboren en línea, gestionen su identidad digital y creen artefactos digitales más complejos (videos, podcasts, infografías). Introduce debates sobre temas como el ciberacoso y la huella digital.",
		TierExpert:     "Implementa proyectos de \"ciudadanía digital\" donde los estudiantes usen la tecnología para participar en la comunidad. Involúcralos en la creación de las normas de convivencia digital del aula. Fomenta que se conviertan en creadores críticos y responsables de contenido para audiencias reales.",
	},
	7: {
		TierNovice:     "Comienza buscando y utilizando REA de repositorios confiables en tus clases. Aprende a identificar los diferentes tipos de licencias Creative Commons y cómo atribuyen la autoría correctamente.",
		TierIntegrator: "Anima a tus estudiantes a adaptar y remezclar REA existentes para sus proyectos. Experimenta con Prácticas Educativas Abiertas, como invitar a expertos externos a través de videoconferencias o publicar los trabajos de los estudiantes con licencias abiertas.",
		TierExpert:     "Lidera proyectos de creación de REA en tu institución. Diseña experiencias de aprendizaje basadas en los principios de la Ciencia Ciudadana, donde los estudiantes contribuyan a proyectos de investigación reales y compartan sus datos de forma abierta y ética.",
	},
}
