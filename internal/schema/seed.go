package schema

// DiagnosisSentinel is the free-text "other" label. It is pinned last in the
// diagnosis list and exempt from deletion.
const DiagnosisSentinel = "Altro..."

// TitleOptions are the honorifics offered when registering a patient.
var TitleOptions = []string{"Sig.", "Sig.ra", "Dott.", "Dott.ssa", "Prof.", "Prof.ssa", "Altro..."}

// VisitTypes are the encounter categories offered when recording a visit.
var VisitTypes = []string{"Prima Visita", "Verifica Terapia", "Controllo", "Urgenza", "Altro..."}

// PredefinedDiagnoses seeds the diagnosis label list. The sentinel stays last.
var PredefinedDiagnoses = []string{
	"Immunodeficienza Comune Variabile (CVID)",
	"Deficit Selettivo di IgA",
	"Sindrome di DiGeorge",
	"Agammaglobulinemia legata all'X (XLA)",
	"Ipogammaglobulinemia",
	DiagnosisSentinel,
}

// InitialDrugs seeds the formulary.
var InitialDrugs = []Drug{
	{ID: "1", Name: "Privigen 10%", DefaultPosology: "0.4g/kg ogni 21gg", DefaultDuration: "Cronica"},
	{ID: "2", Name: "Hizentra 20%", DefaultPosology: "0.1g/kg ogni settimana", DefaultDuration: "Cronica"},
	{ID: "3", Name: "Cuvatru 15%", DefaultPosology: "0.2g/kg ogni 14gg", DefaultDuration: "Cronica"},
}

// InitialSchedule is a standard Mon-Fri working week, Friday short.
var InitialSchedule = []WorkingDay{
	{Day: 1, IsEnabled: true, Start: "09:00", End: "18:00"},
	{Day: 2, IsEnabled: true, Start: "09:00", End: "18:00"},
	{Day: 3, IsEnabled: true, Start: "09:00", End: "18:00"},
	{Day: 4, IsEnabled: true, Start: "09:00", End: "18:00"},
	{Day: 5, IsEnabled: true, Start: "09:00", End: "14:00"},
	{Day: 6, IsEnabled: false, Start: "09:00", End: "13:00"},
	{Day: 0, IsEnabled: false, Start: "09:00", End: "13:00"},
}

// DefaultSettings returns the singleton settings document seeded on first run.
// Returned fresh each call so callers can mutate their copy.
func DefaultSettings() Settings {
	return Settings{
		AdminPassword:  "admin",
		CustomFields:   nil,
		Schedule:       append([]WorkingDay(nil), InitialSchedule...),
		Clinics:        []Clinic{{ID: "1", Name: "Studio Principale", Address: "", Color: "#0d9488"}},
		KnownDiagnoses: []string{},
		PriceList:      nil,
		ClinicDetails:  ClinicDetails{},
	}
}

func strp(s string) *string { return &s }

func exam(name, group string, subgroup *string, testType, target string, method *string) Exam {
	return Exam{Name: name, Group: group, Subgroup: subgroup, TestType: testType, Target: target, Method: method}
}

// ExamCatalog returns the seed exam catalog without IDs; the store assigns
// fresh IDs when it materializes the collection.
func ExamCatalog() []Exam {
	return []Exam{
		// Ematologia
		exam("EMOCROMO CON FORMULA", "Ematologia", nil, "Emocromo", "Sangue", strp("Emocromo completo")),
		exam("RETICOLOCITI", "Ematologia", nil, "Emocromo", "Reticolociti", strp("Citofluorimetria")),
		exam("VES", "Ematologia", nil, "Chimica clinica", "Velocità eritrosedimentazione", strp("Westergren")),
		exam("STRISCIO PERIFERICO", "Ematologia", nil, "Morfologia", "Sangue periferico", strp("Microscopia ottica")),
		exam("GRUPPO SANGUIGNO", "Ematologia", nil, "Immunoematologia", "Gruppo AB0/Rh", strp("Agglutinazione")),
		exam("TEST DI COOMBS DIRETTO", "Ematologia", nil, "Immunoematologia", "Eritrociti", strp("Agglutinazione")),
		exam("TEST DI COOMBS INDIRETTO", "Ematologia", nil, "Immunoematologia", "Siero", strp("Agglutinazione")),
		exam("APTOGLOBINA", "Ematologia", nil, "Chimica clinica", "Aptoglobina", strp("Nefelometria")),
		// Coagulazione
		exam("TEMPO DI PROTROMBINA (PT/INR)", "Coagulazione", nil, "Coagulazione", "PT", strp("Coagulometrico")),
		exam("TEMPO DI TROMBOPLASTINA (aPTT)", "Coagulazione", nil, "Coagulazione", "aPTT", strp("Coagulometrico")),
		exam("FIBRINOGENO", "Coagulazione", nil, "Coagulazione", "Fibrinogeno", strp("Clauss")),
		exam("D-DIMERO", "Coagulazione", nil, "Coagulazione", "D-Dimero", strp("Immunoturbidimetria")),
		exam("ANTITROMBINA III", "Coagulazione", nil, "Coagulazione", "AT III", strp("Cromogenico")),
		exam("OMOCISTEINA", "Coagulazione", nil, "Chimica clinica", "Omocisteina", strp("HPLC")),
		// Biochimica
		exam("GLICEMIA", "Biochimica", nil, "Chimica clinica", "Glucosio", strp("Enzimatico")),
		exam("EMOGLOBINA GLICATA (HbA1c)", "Biochimica", nil, "Chimica clinica", "HbA1c", strp("HPLC")),
		exam("CREATININA", "Biochimica", nil, "Chimica clinica", "Creatinina", strp("Enzimatico")),
		exam("AZOTEMIA", "Biochimica", nil, "Chimica clinica", "Urea", strp("Enzimatico")),
		exam("URICEMIA", "Biochimica", nil, "Chimica clinica", "Acido urico", strp("Enzimatico")),
		exam("COLESTEROLO TOTALE", "Biochimica", nil, "Chimica clinica", "Colesterolo", strp("Enzimatico")),
		exam("COLESTEROLO HDL", "Biochimica", nil, "Chimica clinica", "HDL", strp("Enzimatico")),
		exam("COLESTEROLO LDL", "Biochimica", nil, "Chimica clinica", "LDL", strp("Calcolato")),
		exam("TRIGLICERIDI", "Biochimica", nil, "Chimica clinica", "Trigliceridi", strp("Enzimatico")),
		exam("AST (GOT)", "Biochimica", strp("Fegato"), "Chimica clinica", "AST", strp("Cinetico")),
		exam("ALT (GPT)", "Biochimica", strp("Fegato"), "Chimica clinica", "ALT", strp("Cinetico")),
		exam("GAMMA GT", "Biochimica", strp("Fegato"), "Chimica clinica", "GGT", strp("Cinetico")),
		exam("FOSFATASI ALCALINA", "Biochimica", strp("Fegato"), "Chimica clinica", "ALP", strp("Cinetico")),
		exam("BILIRUBINA TOTALE", "Biochimica", strp("Fegato"), "Chimica clinica", "Bilirubina", strp("Colorimetrico")),
		exam("BILIRUBINA DIRETTA", "Biochimica", strp("Fegato"), "Chimica clinica", "Bilirubina coniugata", strp("Colorimetrico")),
		exam("AMILASI", "Biochimica", strp("Pancreas"), "Chimica clinica", "Amilasi", strp("Cinetico")),
		exam("LIPASI", "Biochimica", strp("Pancreas"), "Chimica clinica", "Lipasi", strp("Cinetico")),
		exam("LDH", "Biochimica", nil, "Chimica clinica", "Lattato deidrogenasi", strp("Cinetico")),
		exam("CPK", "Biochimica", nil, "Chimica clinica", "Creatinchinasi", strp("Cinetico")),
		// Elettroliti
		exam("SODIO", "Elettroliti", nil, "Chimica clinica", "Na+", strp("Potenziometria")),
		exam("POTASSIO", "Elettroliti", nil, "Chimica clinica", "K+", strp("Potenziometria")),
		exam("CLORO", "Elettroliti", nil, "Chimica clinica", "Cl-", strp("Potenziometria")),
		exam("CALCIO", "Elettroliti", nil, "Chimica clinica", "Ca", strp("Colorimetrico")),
		exam("FOSFORO", "Elettroliti", nil, "Chimica clinica", "P", strp("Colorimetrico")),
		exam("MAGNESIO", "Elettroliti", nil, "Chimica clinica", "Mg", strp("Colorimetrico")),
		// Proteinogramma
		exam("PROTEINE TOTALI", "Proteinogramma", strp("Siero"), "Chimica clinica", "Proteine totali", strp("Biureto")),
		exam("ELETTROFORESI PROTEICA SIERO", "Proteinogramma", strp("Siero"), "Elettroforesi", "Proteine sieriche", strp("Elettroforesi")),
		exam("ALBUMINA", "Proteinogramma", strp("Siero"), "Chimica clinica", "Albumina", strp("Colorimetrico")),
		exam("IMMUNOFISSAZIONE SIERO", "Proteinogramma", strp("Siero"), "Elettroforesi", "Componente monoclonale", strp("Immunofissazione")),
		exam("IMMUNOFISSAZIONE URINE", "Proteinogramma", strp("Urine"), "Elettroforesi", "Componente monoclonale", strp("Immunofissazione")),
		exam("PROTEINURIA DI BENCE JONES", "Proteinogramma", strp("Urine"), "Elettroforesi", "Catene leggere libere", strp("Immunofissazione")),
		exam("CATENE LEGGERE LIBERE SIERO", "Proteinogramma", strp("Siero"), "Dosaggio", "Kappa/Lambda", strp("Nefelometria")),
		// Immunoglobuline
		exam("IgG TOTALI", "Immunoglobuline", nil, "Dosaggio", "IgG", strp("Nefelometria")),
		exam("IgA TOTALI", "Immunoglobuline", nil, "Dosaggio", "IgA", strp("Nefelometria")),
		exam("IgM TOTALI", "Immunoglobuline", nil, "Dosaggio", "IgM", strp("Nefelometria")),
		exam("IgE TOTALI", "Immunoglobuline", nil, "Dosaggio", "IgE", strp("FEIA")),
		exam("IgD", "Immunoglobuline", nil, "Dosaggio", "IgD", strp("Nefelometria")),
		exam("SOTTOCLASSE IgG1", "Immunoglobuline", strp("Sottoclassi"), "Dosaggio", "IgG1", strp("Nefelometria")),
		exam("SOTTOCLASSE IgG2", "Immunoglobuline", strp("Sottoclassi"), "Dosaggio", "IgG2", strp("Nefelometria")),
		exam("SOTTOCLASSE IgG3", "Immunoglobuline", strp("Sottoclassi"), "Dosaggio", "IgG3", strp("Nefelometria")),
		exam("SOTTOCLASSE IgG4", "Immunoglobuline", strp("Sottoclassi"), "Dosaggio", "IgG4", strp("Nefelometria")),
		// Sottopopolazioni linfocitarie
		exam("LINFOCITI T CD3+", "Sottopopolazioni Linfocitarie", nil, "Citofluorimetria", "CD3", strp("Citofluorimetria")),
		exam("LINFOCITI T CD4+", "Sottopopolazioni Linfocitarie", nil, "Citofluorimetria", "CD4", strp("Citofluorimetria")),
		exam("LINFOCITI T CD8+", "Sottopopolazioni Linfocitarie", nil, "Citofluorimetria", "CD8", strp("Citofluorimetria")),
		exam("RAPPORTO CD4/CD8", "Sottopopolazioni Linfocitarie", nil, "Citofluorimetria", "CD4/CD8", strp("Calcolato")),
		exam("LINFOCITI B CD19+", "Sottopopolazioni Linfocitarie", nil, "Citofluorimetria", "CD19", strp("Citofluorimetria")),
		exam("LINFOCITI B CD20+", "Sottopopolazioni Linfocitarie", nil, "Citofluorimetria", "CD20", strp("Citofluorimetria")),
		exam("CELLULE NK CD16+/CD56+", "Sottopopolazioni Linfocitarie", nil, "Citofluorimetria", "CD16/CD56", strp("Citofluorimetria")),
		exam("LINFOCITI B MEMORIA SWITCHED", "Sottopopolazioni Linfocitarie", strp("Memoria B"), "Citofluorimetria", "CD27+IgD-", strp("Citofluorimetria")),
		exam("LINFOCITI B NAIVE", "Sottopopolazioni Linfocitarie", strp("Memoria B"), "Citofluorimetria", "CD27-IgD+", strp("Citofluorimetria")),
		exam("LINFOCITI T REGOLATORI", "Sottopopolazioni Linfocitarie", nil, "Citofluorimetria", "CD4+CD25+FoxP3+", strp("Citofluorimetria")),
		exam("TRECs", "Sottopopolazioni Linfocitarie", nil, "Biologia molecolare", "TREC", strp("PCR quantitativa")),
		// Autoanticorpi
		exam("ANA", "Autoanticorpi", strp("Nucleo"), "Autoanticorpi", "ANA", strp("IFI")),
		exam("ENA SCREEN", "Autoanticorpi", strp("Nucleo"), "Autoanticorpi", "ENA", strp("ELISA")),
		exam("ANTI-dsDNA", "Autoanticorpi", strp("Nucleo"), "Autoanticorpi", "dsDNA", strp("IFI su Crithidia")),
		exam("ANTI-SSA/Ro", "Autoanticorpi", strp("Nucleo"), "Autoanticorpi", "SSA/Ro", strp("Immunoblot")),
		exam("ANTI-SSB/La", "Autoanticorpi", strp("Nucleo"), "Autoanticorpi", "SSB/La", strp("Immunoblot")),
		exam("ANTI-Sm", "Autoanticorpi", strp("Nucleo"), "Autoanticorpi", "Sm", strp("Immunoblot")),
		exam("ANTI-RNP", "Autoanticorpi", strp("Nucleo"), "Autoanticorpi", "RNP", strp("Immunoblot")),
		exam("ANCA (p-ANCA/c-ANCA)", "Autoanticorpi", strp("Citoplasma"), "Autoanticorpi", "MPO/PR3", strp("IFI")),
		exam("ASCA", "Autoanticorpi", strp("Intestino"), "Autoanticorpi", "Saccharomyces cerevisiae", strp("ELISA")),
		exam("AMA", "Autoanticorpi", strp("Fegato"), "Autoanticorpi", "Mitocondrio", strp("IFI")),
		exam("ASMA", "Autoanticorpi", strp("Fegato"), "Autoanticorpi", "Muscolo liscio", strp("IFI")),
		exam("ANTI-LKM1", "Autoanticorpi", strp("Fegato"), "Autoanticorpi", "LKM1", strp("IFI")),
		exam("ANTI-TPO", "Autoanticorpi", strp("Tiroide"), "Autoanticorpi", "Tireoperossidasi", strp("CLIA")),
		exam("ANTI-TIREOGLOBULINA", "Autoanticorpi", strp("Tiroide"), "Autoanticorpi", "Tireoglobulina", strp("CLIA")),
		exam("ANTI-TRANSGLUTAMINASI IgA", "Autoanticorpi", strp("Celiachia"), "Autoanticorpi", "tTG IgA", strp("ELISA")),
		exam("ANTI-TRANSGLUTAMINASI IgG", "Autoanticorpi", strp("Celiachia"), "Autoanticorpi", "tTG IgG", strp("ELISA")),
		exam("ANTI-ENDOMISIO (EMA)", "Autoanticorpi", strp("Celiachia"), "Autoanticorpi", "Endomisio", strp("IFI")),
		exam("ANTI-GLIADINA DEAMIDATA", "Autoanticorpi", strp("Celiachia"), "Autoanticorpi", "DGP", strp("ELISA")),
		exam("FATTORE REUMATOIDE", "Autoanticorpi", strp("Articolazioni"), "Autoanticorpi", "FR", strp("Nefelometria")),
		exam("ANTI-CCP", "Autoanticorpi", strp("Articolazioni"), "Autoanticorpi", "Peptide citrullinato", strp("ELISA")),
		exam("ANTI-CARDIOLIPINA IgG", "Autoanticorpi", strp("Fosfolipidi"), "Autoanticorpi", "Cardiolipina IgG", strp("ELISA")),
		exam("ANTI-CARDIOLIPINA IgM", "Autoanticorpi", strp("Fosfolipidi"), "Autoanticorpi", "Cardiolipina IgM", strp("ELISA")),
		exam("ANTI-BETA2 GLICOPROTEINA I", "Autoanticorpi", strp("Fosfolipidi"), "Autoanticorpi", "β2GPI", strp("ELISA")),
		exam("LUPUS ANTICOAGULANT (LAC)", "Autoanticorpi", strp("Fosfolipidi"), "Coagulazione", "LAC", strp("dRVVT")),
		// Complemento
		exam("C3", "Complemento", nil, "Dosaggio", "C3", strp("Nefelometria")),
		exam("C4", "Complemento", nil, "Dosaggio", "C4", strp("Nefelometria")),
		exam("CH50", "Complemento", nil, "Funzionale", "Via classica", strp("Emolitico")),
		exam("C1 INIBITORE DOSAGGIO", "Complemento", strp("C1-INH"), "Dosaggio", "C1-INH", strp("Nefelometria")),
		exam("C1 INIBITORE FUNZIONALE", "Complemento", strp("C1-INH"), "Funzionale", "C1-INH", strp("Cromogenico")),
		exam("C1q", "Complemento", nil, "Dosaggio", "C1q", strp("Nefelometria")),
		// Infiammazione
		exam("PCR", "Infiammazione", nil, "Chimica clinica", "Proteina C reattiva", strp("Immunoturbidimetria")),
		exam("PROCALCITONINA", "Infiammazione", nil, "Dosaggio", "PCT", strp("CLIA")),
		exam("INTERLEUCHINA 6", "Infiammazione", nil, "Dosaggio", "IL-6", strp("CLIA")),
		exam("BETA2 MICROGLOBULINA", "Infiammazione", nil, "Dosaggio", "β2-microglobulina", strp("Nefelometria")),
		exam("CALPROTECTINA FECALE", "Infiammazione", strp("Feci"), "Dosaggio", "Calprotectina", strp("ELISA")),
		// Sierologia infettiva
		exam("EBV VCA IgG", "Sierologia Infettiva", strp("EBV"), "Sierologia", "VCA IgG", strp("CLIA")),
		exam("EBV VCA IgM", "Sierologia Infettiva", strp("EBV"), "Sierologia", "VCA IgM", strp("CLIA")),
		exam("EBV EBNA IgG", "Sierologia Infettiva", strp("EBV"), "Sierologia", "EBNA IgG", strp("CLIA")),
		exam("CMV IgG", "Sierologia Infettiva", strp("CMV"), "Sierologia", "CMV IgG", strp("CLIA")),
		exam("CMV IgM", "Sierologia Infettiva", strp("CMV"), "Sierologia", "CMV IgM", strp("CLIA")),
		exam("CMV DNA QUANTITATIVO", "Sierologia Infettiva", strp("CMV"), "Biologia molecolare", "CMV DNA", strp("PCR quantitativa")),
		exam("TOXOPLASMA IgG", "Sierologia Infettiva", strp("Toxoplasma"), "Sierologia", "Toxo IgG", strp("CLIA")),
		exam("TOXOPLASMA IgM", "Sierologia Infettiva", strp("Toxoplasma"), "Sierologia", "Toxo IgM", strp("CLIA")),
		exam("RUBEO TEST IgG", "Sierologia Infettiva", strp("Rosolia"), "Sierologia", "Rubella IgG", strp("CLIA")),
		exam("HBsAg", "Sierologia Infettiva", strp("Epatite B"), "Sierologia", "HBsAg", strp("CLIA")),
		exam("ANTI-HBs", "Sierologia Infettiva", strp("Epatite B"), "Sierologia", "anti-HBs", strp("CLIA")),
		exam("ANTI-HBc", "Sierologia Infettiva", strp("Epatite B"), "Sierologia", "anti-HBc", strp("CLIA")),
		exam("ANTI-HCV", "Sierologia Infettiva", strp("Epatite C"), "Sierologia", "anti-HCV", strp("CLIA")),
		exam("HIV 1-2 Ab/Ag", "Sierologia Infettiva", strp("HIV"), "Sierologia", "HIV combo", strp("CLIA")),
		exam("TPHA", "Sierologia Infettiva", strp("Lue"), "Sierologia", "Treponema pallidum", strp("Agglutinazione")),
		exam("PARVOVIRUS B19 IgG/IgM", "Sierologia Infettiva", strp("Parvovirus"), "Sierologia", "B19", strp("ELISA")),
		exam("QUANTIFERON TB", "Sierologia Infettiva", strp("Tubercolosi"), "Funzionale", "IFN-γ", strp("IGRA")),
		// Risposta vaccinale
		exam("ANTICORPI ANTI-PNEUMOCOCCO", "Risposta Vaccinale", nil, "Dosaggio", "Anti-PCP IgG", strp("ELISA")),
		exam("ANTICORPI ANTI-TETANO", "Risposta Vaccinale", nil, "Dosaggio", "Anti-tossoide tetanico", strp("ELISA")),
		exam("ANTICORPI ANTI-DIFTERITE", "Risposta Vaccinale", nil, "Dosaggio", "Anti-tossoide difterico", strp("ELISA")),
		exam("ANTICORPI ANTI-HAEMOPHILUS B", "Risposta Vaccinale", nil, "Dosaggio", "Anti-Hib", strp("ELISA")),
		exam("ANTICORPI ANTI-MENINGOCOCCO", "Risposta Vaccinale", nil, "Dosaggio", "Anti-MenC", strp("ELISA")),
		exam("ISOAGGLUTININE", "Risposta Vaccinale", nil, "Funzionale", "Anti-A/Anti-B", strp("Agglutinazione")),
		// Ormoni
		exam("TSH", "Ormoni", strp("Tiroide"), "Dosaggio", "TSH", strp("CLIA")),
		exam("FT3", "Ormoni", strp("Tiroide"), "Dosaggio", "FT3", strp("CLIA")),
		exam("FT4", "Ormoni", strp("Tiroide"), "Dosaggio", "FT4", strp("CLIA")),
		exam("CORTISOLO", "Ormoni", strp("Surrene"), "Dosaggio", "Cortisolo", strp("CLIA")),
		exam("ACTH", "Ormoni", strp("Ipofisi"), "Dosaggio", "ACTH", strp("CLIA")),
		exam("PROLATTINA", "Ormoni", strp("Ipofisi"), "Dosaggio", "PRL", strp("CLIA")),
		exam("PARATORMONE", "Ormoni", strp("Paratiroidi"), "Dosaggio", "PTH", strp("CLIA")),
		// Vitamine e metabolismo del ferro
		exam("VITAMINA D (25-OH)", "Vitamine", nil, "Dosaggio", "25-OH-D", strp("CLIA")),
		exam("VITAMINA B12", "Vitamine", nil, "Dosaggio", "Cobalamina", strp("CLIA")),
		exam("FOLATI", "Vitamine", nil, "Dosaggio", "Acido folico", strp("CLIA")),
		exam("FERRITINA", "Metabolismo Ferro", nil, "Dosaggio", "Ferritina", strp("CLIA")),
		exam("SIDEREMIA", "Metabolismo Ferro", nil, "Chimica clinica", "Ferro", strp("Colorimetrico")),
		exam("TRANSFERRINA", "Metabolismo Ferro", nil, "Dosaggio", "Transferrina", strp("Nefelometria")),
		exam("SATURAZIONE TRANSFERRINA", "Metabolismo Ferro", nil, "Calcolato", "TSAT", strp("Calcolato")),
		// Urine
		exam("ESAME URINE COMPLETO", "Urine", nil, "Chimica clinica", "Urine", strp("Dipstick + sedimento")),
		exam("MICROALBUMINURIA", "Urine", nil, "Dosaggio", "Albumina urinaria", strp("Immunoturbidimetria")),
		exam("PROTEINURIA 24H", "Urine", nil, "Chimica clinica", "Proteine urinarie", strp("Colorimetrico")),
		exam("URINOCOLTURA", "Urine", nil, "Microbiologia", "Urine", strp("Coltura")),
		// Disautonomia
		exam("ACE 2", "Disautonomia", strp("ACE2"), "Autoanticorpi", "ACE2", strp("ELISA")),
		exam("ANTI-RECETTORE ADRENERGICO β1", "Disautonomia", strp("Recettori"), "Autoanticorpi", "β1-AR", strp("ELISA")),
		exam("ANTI-RECETTORE ADRENERGICO β2", "Disautonomia", strp("Recettori"), "Autoanticorpi", "β2-AR", strp("ELISA")),
		exam("ANTI-RECETTORE MUSCARINICO M3", "Disautonomia", strp("Recettori"), "Autoanticorpi", "M3-mAChR", strp("ELISA")),
		exam("ANTI-RECETTORE MUSCARINICO M4", "Disautonomia", strp("Recettori"), "Autoanticorpi", "M4-mAChR", strp("ELISA")),
		// Genetica
		exam("CARIOTIPO", "Genetica", nil, "Citogenetica", "Cariotipo", strp("Bandeggio G")),
		exam("FISH 22q11", "Genetica", strp("DiGeorge"), "Citogenetica", "Delezione 22q11.2", strp("FISH")),
		exam("PANNELLO NGS IMMUNODEFICIENZE", "Genetica", nil, "Biologia molecolare", "Geni PID", strp("NGS")),
		exam("GENE BTK", "Genetica", strp("XLA"), "Biologia molecolare", "BTK", strp("Sequenziamento")),
		exam("GENE TACI (TNFRSF13B)", "Genetica", strp("CVID"), "Biologia molecolare", "TNFRSF13B", strp("Sequenziamento")),
	}
}
