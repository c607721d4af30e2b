package store

import "davar/internal/scripture"

// builtinPack is the reference table shipped with the reader. It is small on
// purpose: real text is expected to arrive through a pack or a backend.
func builtinPack() Pack {
	return Pack{
		Verses: []PackVerse{
			{
				Book: "Genesis", Chapter: 1, Verse: 1,
				Hebrew: "בְּרֵאשִׁית בָּרָא אֱלֹהִים אֵת הַשָּׁמַיִם וְאֵת הָאָרֶץ",
				Translations: map[scripture.Language]string{
					scripture.English: "In the beginning God created the heavens and the earth.",
					scripture.Spanish: "En el principio creó Dios los cielos y la tierra.",
				},
			},
			{
				Book: "Genesis", Chapter: 1, Verse: 2,
				Hebrew: "וְהָאָרֶץ הָיְתָה תֹהוּ וָבֹהוּ וְחֹשֶׁךְ עַל־פְּנֵי תְהוֹם וְרוּחַ אֱלֹהִים מְרַחֶפֶת עַל־פְּנֵי הַמָּיִם",
				Translations: map[scripture.Language]string{
					scripture.English: "Now the earth was formless and empty, darkness was over the surface of the deep, and the Spirit of God was hovering over the waters.",
					scripture.Spanish: "Y la tierra estaba desordenada y vacía, y las tinieblas estaban sobre la faz del abismo, y el Espíritu de Dios se movía sobre la faz de las aguas.",
				},
			},
			{
				Book: "Genesis", Chapter: 1, Verse: 3,
				Hebrew: "וַיֹּאמֶר אֱלֹהִים יְהִי אוֹר וַיְהִי־אוֹר",
				Translations: map[scripture.Language]string{
					scripture.English: "And God said, \"Let there be light,\" and there was light.",
					scripture.Spanish: "Y dijo Dios: Sea la luz; y fue la luz.",
				},
			},
			{
				Book: "Deuteronomy", Chapter: 32, Verse: 8,
				Hebrew: "בְּהַנְחֵל עֶלְיוֹן גּוֹיִם בְּהַפְרִידוֹ בְּנֵי אָדָם יַצֵּב גְּבֻלֹת עַמִּים לְמִסְפַּר בְּנֵי יִשְׂרָאֵל",
				Translations: map[scripture.Language]string{
					scripture.English: "When the Most High gave the nations their inheritance, when he divided mankind, he set the boundaries of the peoples according to the number of the sons of Israel.",
					scripture.Spanish: "Cuando el Altísimo hizo heredar a las naciones, cuando hizo dividir a los hijos de los hombres, estableció los límites de los pueblos según el número de los hijos de Israel.",
				},
				AltText:        "בהנחל עליון גוים בהפרידו בני אדם יצב גבלת עמים למספר בני אלוהים",
				AltTranslation: "When the Most High gave the nations their inheritance, he set the boundaries of the peoples according to the number of the sons of God.",
				Variants: []scripture.WordVariant{
					{AlternateForm: "אלוהים", StandardForm: "יִשְׂרָאֵל", Label: "4QDeutʲ", Color: scripture.ColorPink},
				},
			},
			{
				Book: "Psalms", Chapter: 23, Verse: 1,
				Hebrew: "מִזְמוֹר לְדָוִד יְהוָה רֹעִי לֹא אֶחְסָר",
				Translations: map[scripture.Language]string{
					scripture.English: "A psalm of David. The LORD is my shepherd; I shall not want.",
					scripture.Spanish: "Salmo de David. Jehová es mi pastor; nada me faltará.",
				},
			},
			{
				Book: "Isaiah", Chapter: 53, Verse: 11,
				Hebrew: "מֵעֲמַל נַפְשׁוֹ יִרְאֶה יִשְׂבָּע בְּדַעְתּוֹ יַצְדִּיק צַדִּיק עַבְדִּי לָרַבִּים וַעֲוֺנֹתָם הוּא יִסְבֹּל",
				Translations: map[scripture.Language]string{
					scripture.English: "Out of the anguish of his soul he shall see and be satisfied; by his knowledge shall the righteous one, my servant, make many to be accounted righteous, and he shall bear their iniquities.",
					scripture.Spanish: "Verá el fruto de la aflicción de su alma, y quedará satisfecho; por su conocimiento justificará mi siervo justo a muchos, y llevará las iniquidades de ellos.",
				},
				AltText:        "מעמל נפשו יראה אור ישבע בדעתו יצדיק צדיק עבדי לרבים ועונותם הוא יסבול",
				AltTranslation: "Out of the anguish of his soul he shall see light and be satisfied.",
				Variants: []scripture.WordVariant{
					{AlternateForm: "יראה אור", StandardForm: "יִרְאֶה", Label: "1QIsaᵃ", Color: scripture.ColorYellow},
				},
			},
		},
		Lexicon: []scripture.LexicalEntry{
			{
				Word:                "בְּרֵאשִׁית",
				Transliteration:     "bereshit",
				Meanings:            []string{"in the beginning", "at first"},
				Root:                "ראש",
				RootTransliteration: "rosh",
				RootMeaning:         "head, first, chief",
				Instances: []scripture.WordInstance{
					{VerseRef: "Genesis 1:1", Excerpt: "בְּרֵאשִׁית בָּרָא"},
				},
			},
			{
				Word:                "בָּרָא",
				Transliteration:     "bara",
				Meanings:            []string{"created", "shaped"},
				Root:                "ברא",
				RootTransliteration: "bara",
				RootMeaning:         "to create, to fashion",
				Instances: []scripture.WordInstance{
					{VerseRef: "Genesis 1:1", Excerpt: "בְּרֵאשִׁית בָּרָא אֱלֹהִים"},
				},
			},
			{
				Word:                "אֱלֹהִים",
				Transliteration:     "elohim",
				Meanings:            []string{"God", "gods", "mighty ones"},
				Root:                "אלה",
				RootTransliteration: "eloah",
				RootMeaning:         "deity, mighty one",
				Instances: []scripture.WordInstance{
					{VerseRef: "Genesis 1:1", Excerpt: "בָּרָא אֱלֹהִים"},
					{VerseRef: "Genesis 1:2", Excerpt: "וְרוּחַ אֱלֹהִים"},
					{VerseRef: "Genesis 1:3", Excerpt: "וַיֹּאמֶר אֱלֹהִים"},
				},
			},
			{
				Word:            "הַשָּׁמַיִם",
				Transliteration: "hashamayim",
				Meanings:        []string{"the heavens", "the sky"},
				Instances: []scripture.WordInstance{
					{VerseRef: "Genesis 1:1", Excerpt: "אֵת הַשָּׁמַיִם"},
				},
			},
			{
				Word:                "הָאָרֶץ",
				Transliteration:     "ha'aretz",
				Meanings:            []string{"the earth", "the land"},
				Root:                "ארץ",
				RootTransliteration: "eretz",
				RootMeaning:         "earth, land, ground",
				Instances: []scripture.WordInstance{
					{VerseRef: "Genesis 1:1", Excerpt: "וְאֵת הָאָרֶץ"},
				},
			},
			{
				Word:                "אוֹר",
				Transliteration:     "or",
				Meanings:            []string{"light", "daylight"},
				Root:                "אור",
				RootTransliteration: "or",
				RootMeaning:         "to be light, to shine",
				Instances: []scripture.WordInstance{
					{VerseRef: "Genesis 1:3", Excerpt: "יְהִי אוֹר"},
				},
			},
			{
				Word:                "רֹעִי",
				Transliteration:     "ro'i",
				Meanings:            []string{"my shepherd"},
				Root:                "רעה",
				RootTransliteration: "ra'ah",
				RootMeaning:         "to pasture, to tend",
				Instances: []scripture.WordInstance{
					{VerseRef: "Psalms 23:1", Excerpt: "יְהוָה רֹעִי"},
				},
			},
			{
				Word:                "יִשְׂרָאֵל",
				Transliteration:     "yisra'el",
				Meanings:            []string{"Israel"},
				Root:                "שרה",
				RootTransliteration: "sarah",
				RootMeaning:         "to strive, to persist",
				Instances: []scripture.WordInstance{
					{VerseRef: "Deuteronomy 32:8", Excerpt: "בְּנֵי יִשְׂרָאֵל"},
				},
			},
			{
				Word:                "יִרְאֶה",
				Transliteration:     "yir'eh",
				Meanings:            []string{"he will see"},
				Root:                "ראה",
				RootTransliteration: "ra'ah",
				RootMeaning:         "to see, to perceive",
				Instances: []scripture.WordInstance{
					{VerseRef: "Isaiah 53:11", Excerpt: "נַפְשׁוֹ יִרְאֶה"},
				},
			},
		},
	}
}
