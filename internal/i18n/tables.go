package i18n

var english = map[string]string{
	"nav.home":         "Home",
	"nav.services":     "Services",
	"nav.gallery":      "Gallery",
	"nav.testimonials": "Testimonials",
	"nav.aboutUs":      "About Us",
	"nav.contact":      "Contact",
	"nav.requestQuote": "Request Quote",

	"hero.title":    "Expert Maintenance Solutions for Your Home and Business in Florida",
	"hero.subtitle": "Plumbing, Painting and General Maintenance with Quality and Confidence",
	"hero.cta":      "View Services",

	"services.title":                   "Our Services",
	"services.plumbing.name":           "Plumbing",
	"services.plumbing.description":    "Repairs and installations of plumbing systems",
	"services.painting.name":           "Painting",
	"services.painting.description":    "Residential and commercial painting services",
	"services.maintenance.name":        "General Maintenance",
	"services.maintenance.description": "Repairs and maintenance for your home",
	"services.moreInfo":                "More Information",

	"whyTrustUs.title":                   "Why Trust Us?",
	"whyTrustUs.experience.label":        "Experience",
	"whyTrustUs.experience.description":  "Years of expertise in the industry",
	"whyTrustUs.support247.label":        "24/7 Support",
	"whyTrustUs.support247.description":  "Always available when you need us",
	"whyTrustUs.competitive.label":       "Competitive Prices",
	"whyTrustUs.competitive.description": "Best value for your money",
	"whyTrustUs.warranty.label":          "Warranty",
	"whyTrustUs.warranty.description":    "Quality guaranteed on all services",

	"reviews.title":    "What Our Customers Say",
	"reviews.viewMore": "View More Reviews",
	"reviews.rating":   "Rating",

	"gallery.title":    "Our Recent Work",
	"gallery.followUs": "Follow Us on Instagram",

	"contact.title":         "Need Immediate Help? Contact Us.",
	"contact.name":          "Name",
	"contact.email":         "Email",
	"contact.phone":         "Phone",
	"contact.message":       "Message",
	"contact.send":          "Send",
	"contact.phone_label":   "Phone: (305) 123-4567",
	"contact.email_label":   "Email: info@homeservicesflorida.com",
	"contact.address_label": "Address: 1234 Calle 8, Pinecrest, FL",
	"contact.hours_label":   "Hours: 8:00 AM - 5:00 PM",

	"footer.company":  "Home Services Florida",
	"footer.rights":   "All rights reserved",
	"footer.followUs": "Follow Us",

	"admin.dashboard":         "Admin Dashboard",
	"admin.contentManagement": "Content Management",
	"admin.mediaUpload":       "Media Upload",
	"admin.settings":          "Settings",
	"admin.logout":            "Logout",
	"admin.save":              "Save",
	"admin.cancel":            "Cancel",
	"admin.delete":            "Delete",
	"admin.edit":              "Edit",
	"admin.add":               "Add",
	"admin.loading":           "Loading...",
	"admin.success":           "Success!",
	"admin.error":             "Error",
}

var spanish = map[string]string{
	"nav.home":         "Inicio",
	"nav.services":     "Servicios",
	"nav.gallery":      "Galería",
	"nav.testimonials": "Testimonios",
	"nav.aboutUs":      "Sobre Nosotros",
	"nav.contact":      "Contacto",
	"nav.requestQuote": "Solicitar Presupuesto",

	"hero.title":    "Soluciones Expertas en Mantenimiento para tu Hogar y Negocio en Florida",
	"hero.subtitle": "Plomería, Pintura y Mantenimiento General con Calidad y Confianza",
	"hero.cta":      "Ver Servicios",

	"services.title":                   "Nuestros Servicios",
	"services.plumbing.name":           "Plomería",
	"services.plumbing.description":    "Reparaciones e instalaciones de sistemas de plomería",
	"services.painting.name":           "Pintura",
	"services.painting.description":    "Servicios de pintura residencial y comercial",
	"services.maintenance.name":        "Mantenimiento General",
	"services.maintenance.description": "Reparaciones y mantenimiento para tu hogar",
	"services.moreInfo":                "Más Información",

	"whyTrustUs.title":                   "¿Por Qué Confiar en Nosotros?",
	"whyTrustUs.experience.label":        "Experiencia",
	"whyTrustUs.experience.description":  "Años de experiencia en la industria",
	"whyTrustUs.support247.label":        "Atención 24/7",
	"whyTrustUs.support247.description":  "Siempre disponibles cuando nos necesitas",
	"whyTrustUs.competitive.label":       "Precios Competitivos",
	"whyTrustUs.competitive.description": "El mejor valor por tu dinero",
	"whyTrustUs.warranty.label":          "Garantía",
	"whyTrustUs.warranty.description":    "Calidad garantizada en todos los servicios",

	"reviews.title":    "Lo que Dicen Nuestros Clientes",
	"reviews.viewMore": "Ver Más Opiniones",
	"reviews.rating":   "Calificación",

	"gallery.title":    "Nuestros Trabajos Recientes",
	"gallery.followUs": "Síguenos en Instagram",

	"contact.title":         "¿Necesitas Ayuda Inmediata? Contáctanos.",
	"contact.name":          "Nombre",
	"contact.email":         "Correo Electrónico",
	"contact.phone":         "Teléfono",
	"contact.message":       "Mensaje",
	"contact.send":          "Enviar",
	"contact.phone_label":   "Teléfono: (305) 123-4567",
	"contact.email_label":   "Correo: info@homeservicesflorida.com",
	"contact.address_label": "Dirección: 1234 Calle 8, Pinecrest, FL",
	"contact.hours_label":   "Horario: 8:00 AM - 5:00 PM",

	"footer.company":  "Home Services Florida",
	"footer.rights":   "Todos los derechos reservados",
	"footer.followUs": "Síguenos",

	"admin.dashboard":         "Panel de Administración",
	"admin.contentManagement": "Gestión de Contenido",
	"admin.mediaUpload":       "Carga de Medios",
	"admin.settings":          "Configuración",
	"admin.logout":            "Cerrar Sesión",
	"admin.save":              "Guardar",
	"admin.cancel":            "Cancelar",
	"admin.delete":            "Eliminar",
	"admin.edit":              "Editar",
	"admin.add":               "Agregar",
	"admin.loading":           "Cargando...",
	"admin.success":           "¡Éxito!",
	"admin.error":             "Error",
}
