package chemical

var bundledEntries = []Entry{
	// Alcohols and glycols
	{"64-17-5", "Ethanol", "乙醇"},
	{"67-56-1", "Methyl alcohol (Methanol)", "甲醇"},
	{"67-63-0", "Isopropyl alcohol (2-Propanol)", "異丙醇"},
	{"71-23-8", "1-Propanol", "正丙醇"},
	{"71-36-3", "1-Butanol", "正丁醇"},
	{"100-51-6", "Benzyl alcohol", "苯甲醇"},
	{"107-21-1", "Ethylene glycol", "乙二醇"},
	{"57-55-6", "Propylene glycol", "丙二醇"},
	{"56-81-5", "Glycerol", "甘油"},
	{"25322-68-3", "Polyethylene glycol", "聚乙二醇"},

	// Ketones, aldehydes, ethers, esters
	{"67-64-1", "Acetone", "丙酮"},
	{"78-93-3", "Methyl ethyl ketone (2-Butanone)", "丁酮"},
	{"108-10-1", "Methyl isobutyl ketone", "甲基異丁基酮"},
	{"50-00-0", "Formaldehyde", "甲醛"},
	{"75-07-0", "Acetaldehyde", "乙醛"},
	{"111-30-8", "Glutaraldehyde", "戊二醛"},
	{"60-29-7", "Diethyl ether", "乙醚"},
	{"109-99-9", "Tetrahydrofuran", "四氫呋喃"},
	{"123-91-1", "1,4-Dioxane", "1,4-二噁烷"},
	{"141-78-6", "Ethyl acetate", "乙酸乙酯"},
	{"75-21-8", "Ethylene oxide", "環氧乙烷"},

	// Hydrocarbons
	{"71-43-2", "Benzene", "苯"},
	{"108-88-3", "Toluene", "甲苯"},
	{"1330-20-7", "Xylene", "二甲苯"},
	{"100-41-4", "Ethylbenzene", "乙苯"},
	{"100-42-5", "Styrene", "苯乙烯"},
	{"91-20-3", "Naphthalene", "萘"},
	{"110-54-3", "n-Hexane", "正己烷"},
	{"142-82-5", "n-Heptane", "正庚烷"},
	{"111-65-9", "Octane", "辛烷"},
	{"110-82-7", "Cyclohexane", "環己烷"},
	{"8032-32-4", "Petroleum ether", "石油醚"},
	{"8006-64-2", "Turpentine", "松節油"},
	{"74-82-8", "Methane", "甲烷"},
	{"74-98-6", "Propane", "丙烷"},
	{"106-97-8", "Butane", "丁烷"},
	{"74-86-2", "Acetylene", "乙炔"},

	// Halogenated solvents
	{"75-09-2", "Dichloromethane", "二氯甲烷"},
	{"67-66-3", "Chloroform", "氯仿"},
	{"56-23-5", "Carbon tetrachloride", "四氯化碳"},
	{"79-01-6", "Trichloroethylene", "三氯乙烯"},
	{"127-18-4", "Tetrachloroethylene", "四氯乙烯"},

	// Nitrogen and sulfur organics
	{"75-05-8", "Acetonitrile", "乙腈"},
	{"107-13-1", "Acrylonitrile", "丙烯腈"},
	{"68-12-2", "N,N-Dimethylformamide", "二甲基甲醯胺"},
	{"67-68-5", "Dimethyl sulfoxide", "二甲基亞碸"},
	{"110-86-1", "Pyridine", "吡啶"},
	{"121-44-8", "Triethylamine", "三乙胺"},
	{"62-53-3", "Aniline", "苯胺"},
	{"75-15-0", "Carbon disulfide", "二硫化碳"},
	{"79-06-1", "Acrylamide", "丙烯醯胺"},
	{"60-24-2", "2-Mercaptoethanol", "2-巰基乙醇"},

	// Organic acids and phenols
	{"64-19-7", "Acetic acid", "乙酸"},
	{"64-18-6", "Formic acid", "甲酸"},
	{"76-05-1", "Trifluoroacetic acid", "三氟乙酸"},
	{"79-10-7", "Acrylic acid", "丙烯酸"},
	{"144-62-7", "Oxalic acid", "草酸"},
	{"77-92-9", "Citric acid", "檸檬酸"},
	{"65-85-0", "Benzoic acid", "苯甲酸"},
	{"69-72-7", "Salicylic acid", "水楊酸"},
	{"50-81-7", "L-Ascorbic acid", "抗壞血酸"},
	{"108-95-2", "Phenol", "苯酚"},
	{"60-00-4", "Ethylenediaminetetraacetic acid", "乙二胺四乙酸"},

	// Inorganic acids
	{"7647-01-0", "Hydrochloric acid", "鹽酸"},
	{"7664-93-9", "Sulfuric acid", "硫酸"},
	{"7697-37-2", "Nitric acid", "硝酸"},
	{"7664-38-2", "Phosphoric acid", "磷酸"},
	{"7601-90-3", "Perchloric acid", "過氯酸"},
	{"7664-39-3", "Hydrogen fluoride", "氟化氫"},
	{"10043-35-3", "Boric acid", "硼酸"},

	// Bases
	{"1310-73-2", "Sodium hydroxide", "氫氧化鈉"},
	{"1310-58-3", "Potassium hydroxide", "氫氧化鉀"},
	{"1336-21-6", "Ammonium hydroxide", "氫氧化銨"},
	{"1305-62-0", "Calcium hydroxide", "氫氧化鈣"},
	{"7664-41-7", "Ammonia", "氨"},

	// Oxidizers
	{"7681-52-9", "Sodium hypochlorite", "次氯酸鈉"},
	{"7722-84-1", "Hydrogen peroxide", "過氧化氫"},
	{"7722-64-7", "Potassium permanganate", "過錳酸鉀"},
	{"7778-50-9", "Potassium dichromate", "重鉻酸鉀"},
	{"10588-01-9", "Sodium dichromate", "重鉻酸鈉"},
	{"7775-09-9", "Sodium chlorate", "氯酸鈉"},
	{"3811-04-9", "Potassium chlorate", "氯酸鉀"},
	{"7757-79-1", "Potassium nitrate", "硝酸鉀"},
	{"7631-99-4", "Sodium nitrate", "硝酸鈉"},
	{"6484-52-2", "Ammonium nitrate", "硝酸銨"},
	{"7761-88-8", "Silver nitrate", "硝酸銀"},

	// Salts
	{"7647-14-5", "Sodium chloride", "氯化鈉"},
	{"7447-40-7", "Potassium chloride", "氯化鉀"},
	{"10043-52-4", "Calcium chloride", "氯化鈣"},
	{"12125-02-9", "Ammonium chloride", "氯化銨"},
	{"7646-85-7", "Zinc chloride", "氯化鋅"},
	{"7705-08-0", "Iron(III) chloride", "氯化鐵"},
	{"7646-79-9", "Cobalt(II) chloride", "氯化鈷"},
	{"7718-54-9", "Nickel(II) chloride", "氯化鎳"},
	{"144-55-8", "Sodium bicarbonate", "碳酸氫鈉"},
	{"497-19-8", "Sodium carbonate", "碳酸鈉"},
	{"471-34-1", "Calcium carbonate", "碳酸鈣"},
	{"7757-82-6", "Sodium sulfate", "硫酸鈉"},
	{"7783-20-2", "Ammonium sulfate", "硫酸銨"},
	{"7758-98-7", "Copper(II) sulfate", "硫酸銅"},
	{"7632-00-0", "Sodium nitrite", "亞硝酸鈉"},
	{"1330-43-4", "Sodium tetraborate", "四硼酸鈉"},
	{"143-33-9", "Sodium cyanide", "氰化鈉"},
	{"151-21-3", "Sodium dodecyl sulfate", "十二烷基硫酸鈉"},

	// Oxides
	{"1305-78-8", "Calcium oxide", "氧化鈣"},
	{"13463-67-7", "Titanium dioxide", "二氧化鈦"},
	{"7631-86-9", "Silicon dioxide", "二氧化矽"},
	{"1344-28-1", "Aluminium oxide", "氧化鋁"},

	// Gases
	{"7782-50-5", "Chlorine", "氯氣"},
	{"7782-44-7", "Oxygen", "氧氣"},
	{"7727-37-9", "Nitrogen", "氮氣"},
	{"1333-74-0", "Hydrogen", "氫氣"},
	{"124-38-9", "Carbon dioxide", "二氧化碳"},
	{"630-08-0", "Carbon monoxide", "一氧化碳"},
	{"7783-06-4", "Hydrogen sulfide", "硫化氫"},
	{"74-90-8", "Hydrogen cyanide", "氰化氫"},

	// Elements
	{"7439-97-6", "Mercury", "汞"},
	{"7439-92-1", "Lead", "鉛"},
	{"7440-43-9", "Cadmium", "鎘"},
	{"7440-66-6", "Zinc", "鋅"},
	{"7429-90-5", "Aluminium", "鋁"},
	{"7439-89-6", "Iron", "鐵"},
	{"7440-50-8", "Copper", "銅"},
	{"7440-22-4", "Silver", "銀"},
	{"7440-57-5", "Gold", "金"},
	{"7440-23-5", "Sodium", "鈉"},
	{"7440-09-7", "Potassium", "鉀"},
	{"7439-93-2", "Lithium", "鋰"},
	{"7553-56-2", "Iodine", "碘"},
	{"7726-95-6", "Bromine", "溴"},
	{"7704-34-9", "Sulfur", "硫磺"},
	{"7782-42-5", "Graphite", "石墨"},
	{"7440-44-0", "Carbon", "碳"},

	// Biochemicals and pharmaceuticals
	{"7732-18-5", "Water", "水"},
	{"57-50-1", "Sucrose", "蔗糖"},
	{"50-99-7", "D-Glucose", "葡萄糖"},
	{"77-86-1", "Tris(hydroxymethyl)aminomethane", "三羥甲基氨基甲烷"},
	{"1239-45-8", "Ethidium bromide", "溴化乙錠"},
	{"58-08-2", "Caffeine", "咖啡因"},
	{"50-78-2", "Aspirin (Acetylsalicylic acid)", "阿斯匹靈"},
	{"103-90-2", "Acetaminophen (Paracetamol)", "乙醯胺酚"},
}

var bundledEnglishAliases = []Alias{
	{"bleach", "7681-52-9"},
	{"alcohol", "64-17-5"},
	{"ethyl alcohol", "64-17-5"},
	{"wood alcohol", "67-56-1"},
	{"isopropanol", "67-63-0"},
	{"ipa", "67-63-0"},
	{"rubbing alcohol", "67-63-0"},
	{"mek", "78-93-3"},
	{"mibk", "108-10-1"},
	{"formalin", "50-00-0"},
	{"glycerin", "56-81-5"},
	{"glycerine", "56-81-5"},
	{"peg", "25322-68-3"},
	{"thf", "109-99-9"},
	{"ether", "60-29-7"},
	{"methylene chloride", "75-09-2"},
	{"dcm", "75-09-2"},
	{"dmf", "68-12-2"},
	{"dmso", "67-68-5"},
	{"edta", "60-00-4"},
	{"tris", "77-86-1"},
	{"sds", "151-21-3"},
	{"vitamin c", "50-81-7"},
	{"ascorbic acid", "50-81-7"},
	{"glucose", "50-99-7"},
	{"carbolic acid", "108-95-2"},
	{"muriatic acid", "7647-01-0"},
	{"oil of vitriol", "7664-93-9"},
	{"hydrofluoric acid", "7664-39-3"},
	{"caustic soda", "1310-73-2"},
	{"lye", "1310-73-2"},
	{"caustic potash", "1310-58-3"},
	{"slaked lime", "1305-62-0"},
	{"hydrated lime", "1305-62-0"},
	{"quicklime", "1305-78-8"},
	{"baking soda", "144-55-8"},
	{"soda ash", "497-19-8"},
	{"table salt", "7647-14-5"},
	{"salt", "7647-14-5"},
	{"borax", "1330-43-4"},
	{"silica", "7631-86-9"},
	{"alumina", "1344-28-1"},
	{"aluminum", "7429-90-5"},
	{"quicksilver", "7439-97-6"},
	{"dry ice", "124-38-9"},
	{"blue vitriol", "7758-98-7"},
	{"saltpeter", "7757-79-1"},
}

var bundledChineseAliases = []Alias{
	{"酒精", "64-17-5"},
	{"木精", "67-56-1"},
	{"外用酒精", "67-63-0"},
	{"漂白水", "7681-52-9"},
	{"醋酸", "64-19-7"},
	{"蟻酸", "64-18-6"},
	{"石炭酸", "108-95-2"},
	{"維生素C", "50-81-7"},
	{"丙三醇", "56-81-5"},
	{"三氯甲烷", "67-66-3"},
	{"二甲亞碸", "67-68-5"},
	{"甲基乙基酮", "78-93-3"},
	{"福馬林", "50-00-0"},
	{"燒鹼", "1310-73-2"},
	{"苛性鈉", "1310-73-2"},
	{"苛性鉀", "1310-58-3"},
	{"雙氧水", "7722-84-1"},
	{"食鹽", "7647-14-5"},
	{"小蘇打", "144-55-8"},
	{"蘇打", "497-19-8"},
	{"純鹼", "497-19-8"},
	{"生石灰", "1305-78-8"},
	{"熟石灰", "1305-62-0"},
	{"消石灰", "1305-62-0"},
	{"硼砂", "1330-43-4"},
	{"膽礬", "7758-98-7"},
	{"水銀", "7439-97-6"},
	{"乾冰", "124-38-9"},
	{"活性碳", "7440-44-0"},
	{"氫氟酸", "7664-39-3"},
}

// bundledTranslations covers upstream titles and synonyms that differ from
// the formal English names above.
var bundledTranslations = map[string]string{
	"ethyl alcohol":                     "乙醇",
	"methanol":                          "甲醇",
	"isopropanol":                       "異丙醇",
	"2-propanol":                        "異丙醇",
	"propan-2-ol":                       "異丙醇",
	"propan-1-ol":                       "正丙醇",
	"butan-1-ol":                        "正丁醇",
	"ethane-1,2-diol":                   "乙二醇",
	"propane-1,2-diol":                  "丙二醇",
	"propane-1,2,3-triol":               "甘油",
	"glycerin":                          "甘油",
	"propan-2-one":                      "丙酮",
	"propanone":                         "丙酮",
	"dimethyl ketone":                   "丙酮",
	"2-butanone":                        "丁酮",
	"butan-2-one":                       "丁酮",
	"methanal":                          "甲醛",
	"ethanal":                           "乙醛",
	"pentanedial":                       "戊二醛",
	"ethoxyethane":                      "乙醚",
	"oxolane":                           "四氫呋喃",
	"ethyl ethanoate":                   "乙酸乙酯",
	"oxirane":                           "環氧乙烷",
	"methylbenzene":                     "甲苯",
	"ethenylbenzene":                    "苯乙烯",
	"vinylbenzene":                      "苯乙烯",
	"hexane":                            "正己烷",
	"heptane":                           "正庚烷",
	"ethyne":                            "乙炔",
	"methylene chloride":                "二氯甲烷",
	"trichloromethane":                  "三氯甲烷",
	"tetrachloromethane":                "四氯化碳",
	"trichloroethene":                   "三氯乙烯",
	"tetrachloroethene":                 "四氯乙烯",
	"prop-2-enenitrile":                 "丙烯腈",
	"dimethylformamide":                 "二甲基甲醯胺",
	"methylsulfinylmethane":             "二甲基亞碸",
	"aminobenzene":                      "苯胺",
	"benzenamine":                       "苯胺",
	"prop-2-enamide":                    "丙烯醯胺",
	"ethanoic acid":                     "乙酸",
	"methanoic acid":                    "甲酸",
	"prop-2-enoic acid":                 "丙烯酸",
	"ethanedioic acid":                  "草酸",
	"2-hydroxybenzoic acid":             "水楊酸",
	"ascorbic acid":                     "抗壞血酸",
	"carbolic acid":                     "苯酚",
	"hydrogen chloride":                 "氯化氫",
	"hydrofluoric acid":                 "氫氟酸",
	"caustic soda":                      "氫氧化鈉",
	"sodium hydrogen carbonate":         "碳酸氫鈉",
	"hypochlorous acid, sodium salt":    "次氯酸鈉",
	"sodium hypochlorite solution":      "次氯酸鈉",
	"cupric sulfate":                    "硫酸銅",
	"ferric chloride":                   "氯化鐵",
	"aluminum oxide":                    "氧化鋁",
	"aluminum":                          "鋁",
	"silica":                            "二氧化矽",
	"glucose":                           "葡萄糖",
	"sulfur":                            "硫磺",
	"sulphur":                           "硫磺",
	"oxidane":                           "水",
	"acetylsalicylic acid":              "阿斯匹靈",
	"2-acetyloxybenzoic acid":           "阿斯匹靈",
	"paracetamol":                       "乙醯胺酚",
	"n-(4-hydroxyphenyl)acetamide":      "乙醯胺酚",
	"1,3,7-trimethylpurine-2,6-dione":   "咖啡因",
	"2-amino-2-(hydroxymethyl)propane-1,3-diol": "三羥甲基氨基甲烷",
	"sodium lauryl sulfate":             "十二烷基硫酸鈉",
	"dioxane":                           "1,4-二噁烷",
}
